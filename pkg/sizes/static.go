package sizes

// Static is a fixed Registry backed by plain maps. It is what LoadFS returns
// and what tests and the CLI hand to the resolver.
type Static struct {
	Options map[string]string     `json:"options" yaml:"options"`
	Custom  map[string]Dimensions `json:"sizes" yaml:"sizes"`
}

var _ Registry = (*Static)(nil)

// Option implements Registry.
func (s *Static) Option(key string) (string, bool) {
	if s == nil || s.Options == nil {
		return "", false
	}
	value, ok := s.Options[key]
	return value, ok
}

// CustomSizes implements Registry. The returned map is a copy.
func (s *Static) CustomSizes() map[string]Dimensions {
	if s == nil || len(s.Custom) == 0 {
		return nil
	}
	out := make(map[string]Dimensions, len(s.Custom))
	for name, dims := range s.Custom {
		out[name] = dims
	}
	return out
}

// SetBuiltin writes the width/height options for one of the built-in sizes.
func (s *Static) SetBuiltin(name Name, dims Dimensions) {
	if s.Options == nil {
		s.Options = make(map[string]string, 2)
	}
	s.Options[name+"_size_w"] = dims.WidthString()
	s.Options[name+"_size_h"] = dims.HeightString()
}

// AddSize registers or replaces a custom size.
func (s *Static) AddSize(name string, dims Dimensions) {
	if s.Custom == nil {
		s.Custom = make(map[string]Dimensions)
	}
	s.Custom[name] = dims
}

// Defaults returns the stock host configuration: thumbnail 150x150, medium
// 300x300, large 1024x1024 and no custom sizes.
func Defaults() *Static {
	s := &Static{}
	s.SetBuiltin(Thumbnail, Dimensions{Width: 150, Height: 150})
	s.SetBuiltin(Medium, Dimensions{Width: 300, Height: 300})
	s.SetBuiltin(Large, Dimensions{Width: 1024, Height: 1024})
	return s
}
