package fmv

// FrameCount returns the number of frames recorded in the movie.
func (f *FileInfo) FrameCount() int {
	if f.BytesPerFrame == 0 {
		return 0
	}
	return len(f.FrameData) / f.BytesPerFrame
}

// ActivePorts returns the list of recorded controller ports, numbered from 1
// the way players label them.
func (f *FileInfo) ActivePorts() []int {
	ports := []int{}

	for i, active := range f.Ports {
		if active {
			ports = append(ports, i+1)
		}
	}

	return ports
}

// Frame returns the controller bytes for the given frame, one byte per
// active port in port order. It returns nil when the frame is out of range.
func (f *FileInfo) Frame(index int) []byte {
	if index < 0 || index >= f.FrameCount() {
		return nil
	}

	offset := index * f.BytesPerFrame
	return f.FrameData[offset : offset+f.BytesPerFrame]
}
