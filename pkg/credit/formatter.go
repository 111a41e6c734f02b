package credit

// Formatter receives the rendering events produced by Format. Calls nest as
// described in the package documentation; implementations may keep state
// across calls within one Format call and should reset it in Begin when
// they are not inside a source.
type Formatter interface {
	Begin()
	End()
	BeginSources(label string)
	EndSources()
	BeginSource()
	EndSource()
	AddTitle(text, url string)
	AddAttrib(text, url string)
	AddLicense(text, url string)
	AddText(text string)
}

// NopFormatter implements every Formatter method as a no-op. Embed it to
// override only the hooks a renderer needs.
type NopFormatter struct{}

func (NopFormatter) Begin()                    {}
func (NopFormatter) End()                      {}
func (NopFormatter) BeginSources(string)       {}
func (NopFormatter) EndSources()               {}
func (NopFormatter) BeginSource()              {}
func (NopFormatter) EndSource()                {}
func (NopFormatter) AddTitle(string, string)   {}
func (NopFormatter) AddAttrib(string, string)  {}
func (NopFormatter) AddLicense(string, string) {}
func (NopFormatter) AddText(string)            {}

var _ Formatter = NopFormatter{}
