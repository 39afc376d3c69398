package lanes

type loopBackend struct{}

func (loopBackend) Name() string { return "loop" }

func (loopBackend) Add(a, b Lanes) Lanes {
	var out Lanes
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func (loopBackend) Sub(a, b Lanes) Lanes {
	var out Lanes
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

func (loopBackend) Mul(a, b Lanes) Lanes {
	var out Lanes
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}

func (loopBackend) Div(a, b Lanes) Lanes {
	var out Lanes
	for i := range out {
		out[i] = a[i] / b[i]
	}
	return out
}

func (loopBackend) Scale(a Lanes, s float32) Lanes {
	var out Lanes
	for i := range out {
		out[i] = a[i] * s
	}
	return out
}

func (loopBackend) Min(a, b Lanes) Lanes {
	var out Lanes
	for i := range out {
		out[i] = minf(a[i], b[i])
	}
	return out
}

func (loopBackend) Max(a, b Lanes) Lanes {
	var out Lanes
	for i := range out {
		out[i] = maxf(a[i], b[i])
	}
	return out
}

func (loopBackend) Dot(a, b Lanes) float32 {
	var sum float32
	for i := range a {
		sum += float32(a[i] * b[i])
	}
	return sum
}

func (loopBackend) Lerp(a, b Lanes, t float32) Lanes {
	var out Lanes
	for i := range out {
		out[i] = a[i] + float32((b[i]-a[i])*t)
	}
	return out
}
