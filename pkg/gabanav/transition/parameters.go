package transition

// Appearing returns the parameters for a screen entering the viewport.
func (k Kind) Appearing(size Size, dir Direction) Parameters {
	return k.builder().AppearingParameters(size, dir)
}

// Disappearing returns the parameters for a screen leaving the viewport.
// It is always the appearing run for the opposite direction, reversed.
func (k Kind) Disappearing(size Size, dir Direction) Parameters {
	return k.Appearing(size, dir.Opposite()).Reverse()
}

func (k Kind) builder() Builder {
	switch k.tag {
	case tagModal:
		return modalBuilder{}
	case tagOverlay:
		return overlayBuilder{}
	case tagSliderNav:
		return sliderBuilder{}
	case tagReverseSliderNav:
		return sliderBuilder{reversed: true}
	case tagCustom:
		if k.custom != nil {
			return k.custom
		}
	}
	return identityBuilder{}
}

func visible(size Size) VisualState {
	return VisualState{Frame: FullFrame(size), Alpha: 1}
}

type identityBuilder struct{}

func (identityBuilder) AppearingParameters(size Size, _ Direction) Parameters {
	return Parameters{Initial: visible(size), Final: visible(size)}
}

type overlayBuilder struct{}

func (overlayBuilder) AppearingParameters(size Size, dir Direction) Parameters {
	initial := visible(size)
	if dir == DirectionPush {
		initial.Alpha = 0
	}
	return Parameters{Initial: initial, Final: visible(size)}
}

type modalBuilder struct{}

func (modalBuilder) AppearingParameters(size Size, dir Direction) Parameters {
	initial := visible(size)
	if dir == DirectionPush {
		initial.Frame = initial.Frame.Offset(0, size.H)
	}
	return Parameters{Initial: initial, Final: visible(size)}
}

// sliderBuilder pushes in from the right and comes back from the left at a
// third of the width. The reversed form swaps the two.
type sliderBuilder struct {
	reversed bool
}

func (b sliderBuilder) AppearingParameters(size Size, dir Direction) Parameters {
	if b.reversed {
		dir = dir.Opposite()
	}

	initial := visible(size)
	if dir == DirectionPush {
		initial.Frame = initial.Frame.Offset(size.W, 0)
	} else {
		initial.Frame = initial.Frame.Offset(-size.W/3, 0)
	}
	return Parameters{Initial: initial, Final: visible(size)}
}
