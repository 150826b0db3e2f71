package moji

// scoreEUCJP scores the buffer against the EUC-JP grammar.
//
// 8e shifts to half-width kana (one trail in a1-df), 8f to supplementary
// kanji (two trails in a1-fe), and a lead in a1-fe pairs with a trail in
// a1-fe. Bad trails cost one failure and the trail byte is re-examined as
// the next lead. Scanning stops once failure passes maxFail.
func scoreEUCJP(b []byte, maxFail int) (success, failure int) {
	n := len(b)
	for i := 0; i < n; i++ {
		switch c0 := b[i]; {
		case c0 <= 0x7f:
			success++
			continue

		case c0 == 0x8e:
			if i+1 < n && 0xa1 <= b[i+1] && b[i+1] <= 0xdf {
				success += 2
				i++
				continue
			}
			failure++

		case c0 == 0x8f:
			if i+2 < n &&
				0xa1 <= b[i+1] && b[i+1] <= 0xfe &&
				0xa1 <= b[i+2] && b[i+2] <= 0xfe {
				success += 3
				i += 2
				continue
			}
			failure++

		case 0xa1 <= c0 && c0 <= 0xfe:
			if i+1 < n && 0xa1 <= b[i+1] && b[i+1] <= 0xfe {
				success += 2
				i++
				continue
			}
			failure++

		default:
			failure++
		}

		if failure > maxFail {
			break
		}
	}
	return success, failure
}
