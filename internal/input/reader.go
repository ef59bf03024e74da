package input

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/scribeterm/scribe/internal/input/key"
	"github.com/scribeterm/scribe/internal/input/mouse"
)

// csiMax bounds the scratch buffer for CSI parameter bytes. Sequences
// longer than this are truncated and parsed on what was captured,
// keeping decode latency bounded.
const csiMax = 16

// pasteEnd terminates a bracketed paste.
var pasteEnd = []byte("\x1b[201~")

// Reader decodes a terminal byte stream into input events, one event
// per ReadEvent call. The state machine lives entirely inside each
// call; no decode state survives between calls.
//
// The reader blocks only on the underlying byte reads. When a read
// for a continuation byte fails mid-sequence, decoding falls back to
// the best event derivable from the bytes already consumed: a lone
// ESC decodes as the Escape key rather than an error.
type Reader struct {
	src io.Reader
	one [1]byte
}

// NewReader creates a decoder reading from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadEvent consumes bytes from the source and returns exactly one
// event. End of stream before any byte is consumed yields the None
// event and no error; malformed sequences yield KeyUnknown. Only an
// underlying read error other than end-of-stream is returned.
func (r *Reader) ReadEvent() (Event, error) {
	b, err := r.readByte()
	if err != nil {
		if isEOF(err) {
			return None(), nil
		}
		return None(), err
	}

	switch {
	case b == 0x1b:
		return r.readEscape()
	case b < 0x20:
		return KeyEvent(controlEvent(b)), nil
	case b < 0x7f:
		return KeyEvent(key.NewChar(b, key.ModNone)), nil
	default:
		return KeyEvent(key.NewSpecial(key.KeyUnknown, key.ModNone)), nil
	}
}

// readByte performs one blocking single-byte read.
func (r *Reader) readByte() (byte, error) {
	if _, err := io.ReadFull(r.src, r.one[:]); err != nil {
		return 0, err
	}
	return r.one[0], nil
}

// readEscape handles the byte after ESC. A truncated stream here
// means the user pressed the Escape key itself.
func (r *Reader) readEscape() (Event, error) {
	b, err := r.readByte()
	if err != nil {
		return KeyEvent(key.NewSpecial(key.KeyEscape, key.ModNone)), nil
	}

	switch b {
	case '[':
		return r.readCSI()
	case 'O':
		return r.readSS3()
	default:
		// Alt+key convention: ESC prefixing a plain byte.
		return KeyEvent(key.NewChar(b, key.ModAlt)), nil
	}
}

// readCSI accumulates parameter bytes until a final byte (0x40-0x7E)
// arrives or the scratch buffer fills, then parses the sequence.
func (r *Reader) readCSI() (Event, error) {
	var params [csiMax]byte
	n := 0
	for {
		b, err := r.readByte()
		if err != nil {
			// Truncated mid-sequence: parse what was captured.
			return KeyEvent(parseCSIKey(params[:n], 0)), nil
		}
		if b >= 0x40 && b <= 0x7e {
			return r.finishCSI(params[:n], b)
		}
		if n == len(params) {
			return KeyEvent(parseCSIKey(params[:n], 0)), nil
		}
		params[n] = b
		n++
	}
}

// finishCSI dispatches a complete CSI sequence.
func (r *Reader) finishCSI(params []byte, final byte) (Event, error) {
	// SGR mouse report: CSI < button;x;y M (press) or m (release).
	if len(params) > 0 && params[0] == '<' && (final == 'M' || final == 'm') {
		if ev, ok := parseMouseSGR(params[1:], final == 'M'); ok {
			return MouseEvent(ev), nil
		}
		return KeyEvent(key.NewSpecial(key.KeyUnknown, key.ModNone)), nil
	}

	// Bracketed paste: CSI 200~ ... CSI 201~.
	if final == '~' && bytes.Equal(params, []byte("200")) {
		return r.readPaste()
	}

	return KeyEvent(parseCSIKey(params, final)), nil
}

// parseCSIKey maps a CSI sequence to a key event. Unmapped finals and
// unparseable parameters degrade to KeyUnknown.
func parseCSIKey(params []byte, final byte) key.Event {
	if len(params) == 0 {
		switch final {
		case 'A':
			return key.NewSpecial(key.KeyUp, key.ModNone)
		case 'B':
			return key.NewSpecial(key.KeyDown, key.ModNone)
		case 'C':
			return key.NewSpecial(key.KeyRight, key.ModNone)
		case 'D':
			return key.NewSpecial(key.KeyLeft, key.ModNone)
		case 'H':
			return key.NewSpecial(key.KeyHome, key.ModNone)
		case 'F':
			return key.NewSpecial(key.KeyEnd, key.ModNone)
		}
		return key.NewSpecial(key.KeyUnknown, key.ModNone)
	}

	if final == '~' {
		num, err := strconv.Atoi(string(params))
		if err != nil {
			return key.NewSpecial(key.KeyUnknown, key.ModNone)
		}
		if k, ok := tildeKeys[num]; ok {
			return key.NewSpecial(k, key.ModNone)
		}
	}
	return key.NewSpecial(key.KeyUnknown, key.ModNone)
}

// tildeKeys maps CSI <digits>~ parameters to keys.
var tildeKeys = map[int]key.Key{
	1:  key.KeyHome,
	2:  key.KeyInsert,
	3:  key.KeyDelete,
	4:  key.KeyEnd,
	5:  key.KeyPageUp,
	6:  key.KeyPageDown,
	11: key.KeyF1,
	12: key.KeyF2,
	13: key.KeyF3,
	14: key.KeyF4,
	15: key.KeyF5,
	17: key.KeyF6,
	18: key.KeyF7,
	19: key.KeyF8,
	20: key.KeyF9,
	21: key.KeyF10,
	23: key.KeyF11,
	24: key.KeyF12,
}

// readSS3 handles ESC O sequences, used by some terminals for F1-F4.
func (r *Reader) readSS3() (Event, error) {
	b, err := r.readByte()
	if err != nil {
		return KeyEvent(key.NewSpecial(key.KeyUnknown, key.ModNone)), nil
	}
	switch b {
	case 'P':
		return KeyEvent(key.NewSpecial(key.KeyF1, key.ModNone)), nil
	case 'Q':
		return KeyEvent(key.NewSpecial(key.KeyF2, key.ModNone)), nil
	case 'R':
		return KeyEvent(key.NewSpecial(key.KeyF3, key.ModNone)), nil
	case 'S':
		return KeyEvent(key.NewSpecial(key.KeyF4, key.ModNone)), nil
	}
	return KeyEvent(key.NewSpecial(key.KeyUnknown, key.ModNone)), nil
}

// readPaste collects raw bytes until the paste terminator. The bytes
// are returned as-is; a stream ending mid-paste yields what was
// collected so far.
func (r *Reader) readPaste() (Event, error) {
	var buf bytes.Buffer
	for {
		b, err := r.readByte()
		if err != nil {
			return PasteEvent(buf.Bytes()), nil
		}
		buf.WriteByte(b)
		if bytes.HasSuffix(buf.Bytes(), pasteEnd) {
			data := buf.Bytes()
			return PasteEvent(data[:len(data)-len(pasteEnd)]), nil
		}
	}
}

// parseMouseSGR parses "button;x;y" from an SGR mouse report.
// Coordinates are 1-based on the wire and converted to 0-based cells.
func parseMouseSGR(params []byte, pressed bool) (mouse.Event, bool) {
	fields := bytes.Split(params, []byte{';'})
	if len(fields) != 3 {
		return mouse.Event{}, false
	}
	btn, err1 := strconv.Atoi(string(fields[0]))
	x, err2 := strconv.Atoi(string(fields[1]))
	y, err3 := strconv.Atoi(string(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil || x < 1 || y < 1 {
		return mouse.Event{}, false
	}

	var button mouse.Button
	switch btn & 0x3 {
	case 0:
		button = mouse.ButtonLeft
	case 1:
		button = mouse.ButtonMiddle
	case 2:
		button = mouse.ButtonRight
	default:
		button = mouse.ButtonNone
	}

	return mouse.Event{
		Button:  button,
		X:       uint16(x - 1),
		Y:       uint16(y - 1),
		Pressed: pressed,
	}, true
}

// controlEvent maps a control byte (below 0x20) to a key event via a
// fixed table. Control bytes without an entry decode as KeyUnknown.
func controlEvent(b byte) key.Event {
	switch b {
	case 1, 2, 3, 4:
		return key.NewChar('a'+b-1, key.ModCtrl)
	case 8:
		return key.NewSpecial(key.KeyBackspace, key.ModNone)
	case 9:
		return key.NewSpecial(key.KeyTab, key.ModNone)
	case 10, 13:
		return key.NewSpecial(key.KeyEnter, key.ModNone)
	default:
		return key.NewSpecial(key.KeyUnknown, key.ModNone)
	}
}

// isEOF reports whether err is stream exhaustion rather than a real
// read failure.
func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
