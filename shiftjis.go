package moji

// scoreShiftJIS scores the buffer against the Shift_JIS grammar.
//
// a1-df single bytes are half-width kana. Double-byte units take a lead in
// 81-9f or e0-fc and a trail in 40-7e or 80-fc. A bad trail counts one
// failure and is re-examined as the next lead, so one stray byte costs a
// single failure. Scanning stops once failure passes maxFail.
func scoreShiftJIS(b []byte, maxFail int) (success, failure int) {
	n := len(b)
	for i := 0; i < n; i++ {
		switch c0 := b[i]; {
		case c0 <= 0x7f || (0xa1 <= c0 && c0 <= 0xdf):
			success++
			continue

		case (0x81 <= c0 && c0 <= 0x9f) || (0xe0 <= c0 && c0 <= 0xfc):
			if i+1 < n {
				c1 := b[i+1]
				if (0x40 <= c1 && c1 <= 0x7e) || (0x80 <= c1 && c1 <= 0xfc) {
					success += 2
					i++
					continue
				}
			}
			failure++

		default:
			// 0x80, 0xa0, 0xfd-0xff are never legal in Shift_JIS.
			failure++
		}

		if failure > maxFail {
			break
		}
	}
	return success, failure
}
