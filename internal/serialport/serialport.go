package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// readTimeout bounds a single read so a silent receiver cannot stall the
// decode cycle. The port returns whatever is already buffered well before
// the timeout expires.
const readTimeout = 50 * time.Millisecond

// Port adapts a UART GPS receiver to the decoder's Transport interface.
type Port struct {
	path string
	mode *serial.Mode
	port serial.Port
}

// Open opens the serial device at the given baud rate (8N1, the receiver's
// documented framing).
func Open(path string, baudRate int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := open(path, mode)
	if err != nil {
		return nil, err
	}
	return &Port{path: path, mode: mode, port: port}, nil
}

func open(path string, mode *serial.Mode) (serial.Port, error) {
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", path, err)
	}
	return port, nil
}

// Reconnect closes the device and opens it again with the original settings.
// Used after a read error, e.g. when the USB adapter was unplugged.
func (p *Port) Reconnect() error {
	if p.port != nil {
		p.port.Close()
		p.port = nil
	}
	port, err := open(p.path, p.mode)
	if err != nil {
		return err
	}
	p.port = port
	return nil
}

// ReadAvailable returns the bytes the receiver has already delivered.
// A timed-out read reports 0 bytes and no error, which the decode cycle
// treats as "nothing to do".
func (p *Port) ReadAvailable(buf []byte) (int, error) {
	if p.port == nil {
		return 0, fmt.Errorf("%s is not open", p.path)
	}
	return p.port.Read(buf)
}

// Close closes the underlying serial port
func (p *Port) Close() error {
	if p.port == nil {
		return nil
	}
	return p.port.Close()
}
