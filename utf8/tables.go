package utf8

// Classification tables keyed on a byte's high nibble. Each is 16
// entries so one table-gather classifies a whole chunk per step.

// continuationLengths gives the total length of the sequence a byte
// starts: 1 for ASCII, 0 for continuation bytes (they start nothing),
// 2-4 for multi-byte lead bytes. Nibble 0xF also covers the invalid
// 0xF5-0xFF leads; those are rejected separately by the range check.
var continuationLengths = [16]byte{
	1, 1, 1, 1, 1, 1, 1, 1, // 0xxx ASCII
	0, 0, 0, 0, // 10xx continuation
	2, 2, // 110x two-byte lead
	3, // 1110 three-byte lead
	4, // 1111 four-byte lead
}

// initialMins gives the minimum allowed value of a lead byte itself,
// keyed on its high nibble and compared as int8. 0x80 (-128) is the
// "no constraint" sentinel: nothing is signed-less than it.
var initialMins = [16]byte{
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80,
	0xC2, // 1100: 0xC0 and 0xC1 can only encode overlong U+0000-U+007F
	0x80, // 1101: all of 0xD0-0xDF is fine
	0xE1, // 1110: 0xE0 needs its second byte checked
	0xF1, // 1111: 0xF0 needs its second byte checked
}

// secondMins gives the minimum allowed value of the byte following a
// lead, keyed on the lead's high nibble and compared as int8. 0x7F
// (127) is the "always under" sentinel: continuation bytes are all
// signed-negative, so the initial check alone decides those lanes.
var secondMins = [16]byte{
	0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
	0x80, 0x80, 0x80, 0x80,
	0x7F, 0x7F, // 110x: decided by initialMins
	0xA0, // 1110: 0xE0 0x80-0x9F would re-encode U+0000-U+07FF
	0x90, // 1111: 0xF0 0x80-0x8F would re-encode U+0000-U+FFFF
}
