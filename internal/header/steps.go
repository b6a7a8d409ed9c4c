package header

// Step is one entry of the "How Zupro works" sheet.
type Step struct {
	Label string
	Desc  string
}

var Steps = []Step{
	{Label: "Register yourself", Desc: "Create your free Zupro profile in under 2 minutes."},
	{Label: "Find jobs near you", Desc: "Browse hundreds of local jobs matched to your area."},
	{Label: "Go & start working", Desc: "Head to the location and begin earning right away."},
	{Label: "Build profile, grow career", Desc: "Collect reviews, gain skills, unlock better opportunities."},
}
