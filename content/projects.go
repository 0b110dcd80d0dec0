package content

// Project is one portfolio entry. Loaded once at startup, read-only after
type Project struct {
	Name        string   `toml:"name"`
	Tag         string   `toml:"tag"`
	Techs       []string `toml:"techs"`
	Description string   `toml:"description"`
	Link        string   `toml:"link"`

	// Origin pins the orb to explicit world coordinates when set;
	// otherwise the factory places it on the default ring
	Origin *[3]float64 `toml:"origin"`
}

// DisplayName returns the label text, degrading to empty for missing names
// rather than failing orb construction
func (p Project) DisplayName() string {
	return p.Name
}

// DefaultProjects is the built-in portfolio used when no content file is
// given. Ordering is stable: the index is the orb's identity
var DefaultProjects = []Project{
	{
		Name:        "helm-chartis",
		Tag:         "infra",
		Techs:       []string{"go", "kubernetes", "helm"},
		Description: "Chart dependency visualizer with drift detection across clusters.",
		Link:        "https://github.com/lixenwraith/helm-chartis",
	},
	{
		Name:        "packet-loom",
		Tag:         "network",
		Techs:       []string{"go", "ebpf"},
		Description: "Flow reassembly and latency weaving for noisy capture streams.",
		Link:        "https://github.com/lixenwraith/packet-loom",
	},
	{
		Name:        "tonewheel",
		Tag:         "audio",
		Techs:       []string{"go", "dsp"},
		Description: "Additive synthesis playground with live harmonic morphing.",
		Link:        "https://github.com/lixenwraith/tonewheel",
	},
	{
		Name:        "glyphfall",
		Tag:         "game",
		Techs:       []string{"go", "tcell"},
		Description: "Terminal typing defense game with procedural waves.",
		Link:        "https://github.com/lixenwraith/glyphfall",
	},
	{
		Name:        "quietlog",
		Tag:         "tooling",
		Techs:       []string{"go"},
		Description: "Structured logger that stays out of hot paths.",
		Link:        "https://github.com/lixenwraith/quietlog",
	},
	{
		Name:        "driftmap",
		Tag:         "viz",
		Techs:       []string{"go", "simplex"},
		Description: "Noise-field cartography renders for generative terrain.",
		Link:        "https://github.com/lixenwraith/driftmap",
	},
}
