package input

import "io"

// Mux samples the digital provider and, when present, the analog provider
// once per tick and merges them into a single frame
type Mux struct {
	digital Source
	analog  Source
}

// NewMux creates a combined source; analog may be nil
func NewMux(digital, analog Source) *Mux {
	return &Mux{digital: digital, analog: analog}
}

// Poll implements Source
func (m *Mux) Poll() Frame {
	var f Frame
	if m.digital != nil {
		f = m.digital.Poll()
	}
	if m.analog != nil {
		f = Merge(m.analog.Poll(), f)
	}
	return f
}

// AnalogActive reports whether an analog provider is attached
func (m *Mux) AnalogActive() bool {
	return m.analog != nil
}

// Close releases the analog provider if it owns a handle
func (m *Mux) Close() error {
	if c, ok := m.analog.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
