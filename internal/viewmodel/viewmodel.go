package viewmodel

// CountdownUnit is one box of the countdown.
type CountdownUnit struct {
	ID    string
	Name  string
	Label string
	Value string
	Pulse bool
	Class string
}

// CountdownFragment holds data for the countdown block.
type CountdownFragment struct {
	Arrived        bool
	ArrivedHeading string
	ArrivedMessage string
	Units          []CountdownUnit
}

// Section heading revealed on scroll.
type Heading struct {
	ID    string
	Text  string
	Class string
}

// StoryItem holds one timeline entry.
type StoryItem struct {
	ID           string
	Class        string
	ContentID    string
	ContentClass string
	When         string
	Title        string
	Text         string
	Image        string
}

// InfoCard holds one venue card.
type InfoCard struct {
	ID    string
	Class string
	Icon  string
	Title string
	Lines []string
}

// Photo holds one gallery image.
type Photo struct {
	ID    string
	Class string
	Src   string
	Alt   string
}

// HomePage holds data for the wedding page template.
type HomePage struct {
	Title         string
	Bride         string
	Groom         string
	Tagline       string
	DateLabel     string
	ParallaxSpeed float64
	Headings      map[string]Heading
	Countdown     CountdownFragment
	Story         []StoryItem
	Info          []InfoCard
	Gallery       []Photo
}
