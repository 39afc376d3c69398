package lanes

type unrolledBackend struct{}

func (unrolledBackend) Name() string { return "unrolled" }

func (unrolledBackend) Add(a, b Lanes) Lanes {
	return Lanes{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (unrolledBackend) Sub(a, b Lanes) Lanes {
	return Lanes{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (unrolledBackend) Mul(a, b Lanes) Lanes {
	return Lanes{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (unrolledBackend) Div(a, b Lanes) Lanes {
	return Lanes{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (unrolledBackend) Scale(a Lanes, s float32) Lanes {
	return Lanes{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func (unrolledBackend) Min(a, b Lanes) Lanes {
	return Lanes{minf(a[0], b[0]), minf(a[1], b[1]), minf(a[2], b[2]), minf(a[3], b[3])}
}

func (unrolledBackend) Max(a, b Lanes) Lanes {
	return Lanes{maxf(a[0], b[0]), maxf(a[1], b[1]), maxf(a[2], b[2]), maxf(a[3], b[3])}
}

func (unrolledBackend) Dot(a, b Lanes) float32 {
	// Summed left to right from zero, matching the loop backend bit for
	// bit. The float32 conversions keep the compiler from fusing into FMA.
	var sum float32
	sum += float32(a[0] * b[0])
	sum += float32(a[1] * b[1])
	sum += float32(a[2] * b[2])
	sum += float32(a[3] * b[3])
	return sum
}

func (unrolledBackend) Lerp(a, b Lanes, t float32) Lanes {
	return Lanes{
		a[0] + float32((b[0]-a[0])*t),
		a[1] + float32((b[1]-a[1])*t),
		a[2] + float32((b[2]-a[2])*t),
		a[3] + float32((b[3]-a[3])*t),
	}
}
