package types

// InputState is the per-frame snapshot of held directional keys.
type InputState struct {
	Left, Right, Up, Down bool
}

// Resolve picks a heading from the held keys in fixed priority
// Left > Down > Up > Right. With nothing held it returns current.
func (s InputState) Resolve(current Direction) Direction {
	switch {
	case s.Left:
		return Left
	case s.Down:
		return Down
	case s.Up:
		return Up
	case s.Right:
		return Right
	default:
		return current
	}
}
