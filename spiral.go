package clothoid

import "math"

// Spiral is the canonical Euler spiral: the curve whose curvature is zero at
// arc length zero and grows linearly along the curve at the constant rate
// CDot. The spiral starts at the local origin heading along the positive x
// axis; negative arc lengths walk the point-symmetric half on the other side
// of the inflection point.
type Spiral struct {
	// CDot is the first derivative of curvature with respect to arc
	// length, in 1/length². Its sign selects the handedness of the
	// spiral. Zero degenerates to a straight line.
	CDot float64
}

// Eval returns the pose at arc length s, measured from the inflection point.
//
// The family of spirals collapses onto the single Fresnel curve under the
// scale a = 1/√|CDot|: Eval computes the Fresnel integrals at s/a and maps
// them back by a, with the y coordinate and heading mirrored for negative
// CDot.
//
// For NaN or infinite s, Eval returns [ErrNonFinite]. Eval(0) is exactly the
// zero pose for every CDot.
func (sp Spiral) Eval(s float64) (Pose, error) {
	if !isFinite(s) || !isFinite(sp.CDot) {
		return Pose{}, ErrNonFinite
	}
	if sp.CDot == 0 {
		return Pose{Point: Pt(s, 0)}, nil
	}

	a := 1.0 / math.Sqrt(math.Abs(sp.CDot))
	so := s / a
	c, sf, err := Fresnel(so)
	if err != nil {
		return Pose{}, err
	}

	x := a * c
	y := a * sf
	th := so * so * 0.5
	if sp.CDot < 0 {
		y = -y
		th = -th
	}
	return Pose{Point: Pt(x, y), Heading: th}, nil
}

// Curvature returns the curvature at arc length s.
func (sp Spiral) Curvature(s float64) float64 {
	return sp.CDot * s
}

// Segment is a finite spiral piece positioned in the plane, in the style of
// road geometry descriptions: it begins at Start with heading StartHeading
// and curvature StartCurvature, and its curvature changes linearly to
// EndCurvature over Length.
//
// Equal start and end curvatures degenerate the segment into a circular arc,
// or into a straight ray when that curvature is zero.
type Segment struct {
	Start          Point
	StartHeading   float64
	StartCurvature float64
	EndCurvature   float64
	Length         float64
}

// Eval returns the pose at arc length s from the segment start. s is not
// clamped to [0, Length]; evaluation is closed-form everywhere, so the
// segment extends naturally in both directions.
func (sg Segment) Eval(s float64) (Pose, error) {
	if !isFinite(s) {
		return Pose{}, ErrNonFinite
	}
	cDot := (sg.EndCurvature - sg.StartCurvature) / sg.Length
	if cDot == 0 {
		return sg.evalConstCurvature(s), nil
	}

	// The segment is a window onto the canonical spiral, starting at the
	// arc length where that spiral reaches StartCurvature. Evaluate
	// there and at the target, then move the local difference into the
	// start pose.
	sp := Spiral{CDot: cDot}
	s0 := sg.StartCurvature / cDot
	p0, err := sp.Eval(s0)
	if err != nil {
		return Pose{}, err
	}
	p1, err := sp.Eval(s0 + s)
	if err != nil {
		return Pose{}, err
	}

	d := p1.Point.Sub(p0.Point).Rotate(sg.StartHeading - p0.Heading)
	return Pose{
		Point:   sg.Start.Translate(d),
		Heading: sg.StartHeading + (p1.Heading - p0.Heading),
	}, nil
}

// End returns the pose at the far end of the segment.
func (sg Segment) End() (Pose, error) {
	return sg.Eval(sg.Length)
}

// Curvature returns the curvature at arc length s from the segment start.
func (sg Segment) Curvature(s float64) float64 {
	return sg.StartCurvature + (sg.EndCurvature-sg.StartCurvature)/sg.Length*s
}

func (sg Segment) evalConstCurvature(s float64) Pose {
	k := sg.StartCurvature
	if k == 0 {
		return Pose{
			Point:   sg.Start.Translate(Vec(s, 0).Rotate(sg.StartHeading)),
			Heading: sg.StartHeading,
		}
	}
	// Circular arc of radius 1/k via the chord construction.
	th := k * s
	d := Vec(math.Sin(th)/k, (1-math.Cos(th))/k).Rotate(sg.StartHeading)
	return Pose{
		Point:   sg.Start.Translate(d),
		Heading: sg.StartHeading + th,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
