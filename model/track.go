package model

// TrackLength is the number of cells on the serpentine track.
const TrackLength = Width * Height

// ToTrack returns the linear track position of (x, y). Even rows run from
// column 0 to Width-1, odd rows back again.
func ToTrack(x, y int) int {
	if y%2 == 0 {
		return y*Width + x
	}
	return y*Width + Width - 1 - x
}

// FromTrack is the inverse of ToTrack. Positions off the track are clamped to
// its ends.
func FromTrack(pos int) (x, y int) {
	if pos < 0 {
		pos = 0
	}
	if pos > TrackLength-1 {
		pos = TrackLength - 1
	}
	y = pos / Width
	x = pos % Width
	if y%2 == 1 {
		x = Width - 1 - x
	}
	return x, y
}
