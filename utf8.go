package moji

func utf8Cont(c byte) bool {
	return 0x80 <= c && c <= 0xbf
}

// scoreUTF8 scores the buffer against the UTF-8 grammar: a lead in c0-df,
// e0-ef or f0-f7 followed by one, two or three continuation bytes in
// 80-bf. A short or broken sequence costs one failure and scanning resumes
// at the byte after the lead. Scanning stops once failure passes maxFail.
func scoreUTF8(b []byte, maxFail int) (success, failure int) {
	n := len(b)
	for i := 0; i < n; i++ {
		switch c0 := b[i]; {
		case c0 <= 0x7f:
			success++
			continue

		case 0xc0 <= c0 && c0 <= 0xdf:
			if i+1 < n && utf8Cont(b[i+1]) {
				success += 2
				i++
				continue
			}
			failure++

		case 0xe0 <= c0 && c0 <= 0xef:
			if i+2 < n && utf8Cont(b[i+1]) && utf8Cont(b[i+2]) {
				success += 3
				i += 2
				continue
			}
			failure++

		case 0xf0 <= c0 && c0 <= 0xf7:
			if i+3 < n && utf8Cont(b[i+1]) && utf8Cont(b[i+2]) && utf8Cont(b[i+3]) {
				success += 4
				i += 3
				continue
			}
			failure++

		default:
			// Bare continuation bytes and f8-ff are never legal leads.
			failure++
		}

		if failure > maxFail {
			break
		}
	}
	return success, failure
}
