package templates

// Palette is the set of CSS class tokens a template uses. Both renderers apply
// the same tokens to the same elements.
type Palette struct {
	Page       string
	Nav        string
	NavBrand   string
	NavLink    string
	Hero       string
	HeroName   string
	HeroTitle  string
	HeroBio    string
	HeroLink   string
	Button     string
	ButtonAlt  string
	Stats      string
	Stat       string
	StatIcon   string
	StatValue  string
	StatLabel  string
	Section    string
	Heading    string
	Subheading string
	Card       string
	CardTitle  string
	Muted      string
	Body       string
	Tag        string
	Badge      string
	BarTrack   string
	Bar        string
	Link       string
	Input      string
	Footer     string
	Animate    string
}

// Merge returns p with every non-empty field of o applied on top
func (p Palette) Merge(o Palette) Palette {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&p.Page, o.Page)
	pick(&p.Nav, o.Nav)
	pick(&p.NavBrand, o.NavBrand)
	pick(&p.NavLink, o.NavLink)
	pick(&p.Hero, o.Hero)
	pick(&p.HeroName, o.HeroName)
	pick(&p.HeroTitle, o.HeroTitle)
	pick(&p.HeroBio, o.HeroBio)
	pick(&p.HeroLink, o.HeroLink)
	pick(&p.Button, o.Button)
	pick(&p.ButtonAlt, o.ButtonAlt)
	pick(&p.Stats, o.Stats)
	pick(&p.Stat, o.Stat)
	pick(&p.StatIcon, o.StatIcon)
	pick(&p.StatValue, o.StatValue)
	pick(&p.StatLabel, o.StatLabel)
	pick(&p.Section, o.Section)
	pick(&p.Heading, o.Heading)
	pick(&p.Subheading, o.Subheading)
	pick(&p.Card, o.Card)
	pick(&p.CardTitle, o.CardTitle)
	pick(&p.Muted, o.Muted)
	pick(&p.Body, o.Body)
	pick(&p.Tag, o.Tag)
	pick(&p.Badge, o.Badge)
	pick(&p.BarTrack, o.BarTrack)
	pick(&p.Bar, o.Bar)
	pick(&p.Link, o.Link)
	pick(&p.Input, o.Input)
	pick(&p.Footer, o.Footer)
	pick(&p.Animate, o.Animate)
	return p
}

// darkPalette is shared by the specialist templates, which differ in accent only
func darkPalette(accent, gradient string) Palette {
	return Palette{
		Page:       "min-h-screen bg-gray-900 text-white",
		Nav:        "sticky top-0 z-50 bg-gray-900/90 backdrop-blur border-b border-gray-800 px-6 py-4 flex justify-between items-center",
		NavBrand:   "text-xl font-bold text-" + accent + "-400",
		NavLink:    "text-gray-300 hover:text-" + accent + "-400 mx-3",
		Hero:       "relative py-24 px-6 text-center bg-gradient-to-br " + gradient,
		HeroName:   "text-5xl md:text-7xl font-bold mb-4 bg-gradient-to-r from-" + accent + "-400 to-white bg-clip-text text-transparent",
		HeroTitle:  "text-2xl md:text-3xl text-" + accent + "-300 mb-6",
		HeroBio:    "text-lg text-gray-300 max-w-3xl mx-auto mb-8 leading-relaxed",
		HeroLink:   "text-" + accent + "-300 hover:text-white mx-3",
		Button:     "px-8 py-3 bg-" + accent + "-600 hover:bg-" + accent + "-700 rounded-full font-semibold mx-2",
		ButtonAlt:  "px-8 py-3 border border-" + accent + "-400 text-" + accent + "-400 rounded-full font-semibold mx-2",
		Stats:      "py-12 px-6 bg-gray-800 grid grid-cols-2 md:grid-cols-4 gap-6 text-center",
		Stat:       "p-4",
		StatIcon:   "text-3xl mb-2",
		StatValue:  "text-3xl font-bold text-" + accent + "-400",
		StatLabel:  "text-gray-400",
		Section:    "py-20 px-6 max-w-6xl mx-auto",
		Heading:    "text-4xl font-bold text-center mb-4 text-" + accent + "-400",
		Subheading: "text-xl text-gray-400 text-center mb-12",
		Card:       "bg-gray-800 border border-gray-700 rounded-xl p-6 mb-6",
		CardTitle:  "text-xl font-bold text-white mb-2",
		Muted:      "text-gray-400 text-sm",
		Body:       "text-gray-300 leading-relaxed",
		Tag:        "inline-block px-3 py-1 mr-2 mb-2 bg-" + accent + "-900/50 text-" + accent + "-300 rounded-full text-sm",
		Badge:      "inline-block px-3 py-1 bg-" + accent + "-600 text-white rounded-full text-xs font-semibold mr-3",
		BarTrack:   "w-full bg-gray-700 rounded-full h-2 my-2",
		Bar:        "h-2 rounded-full bg-gradient-to-r",
		Link:       "text-" + accent + "-400 hover:text-" + accent + "-300 mr-4",
		Input:      "w-full px-4 py-3 mb-4 bg-gray-700 border border-gray-600 rounded-lg text-white",
		Footer:     "py-8 text-center text-gray-500 border-t border-gray-800",
	}
}
