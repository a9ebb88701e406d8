package models

// Resource is a static support entry: a helpline, a self-help guide or a
// counseling pointer.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Type        string `json:"type"`
}

// Resource types.
const (
	ResourceHelpline  = "helpline"
	ResourceGuide     = "guide"
	ResourceCounselor = "counselor"
)

// Resources is the static support catalog served read-only.
var Resources = []Resource{
	{Title: "KIRAN National Mental Health Helpline", Description: "Free, 24/7 and confidential crisis support across India.", Link: "tel:18005990019", Type: ResourceHelpline},
	{Title: "Vandrevala Foundation Helpline", Description: "Round-the-clock counseling support by trained professionals.", Link: "tel:9999666555", Type: ResourceHelpline},
	{Title: "Mindful Breathing Exercises", Description: "A simple guide to calm your mind and body through breathing.", Link: "/resources", Type: ResourceGuide},
	{Title: "Understanding Cognitive Behavioral Therapy (CBT)", Description: "Learn about a powerful technique for managing anxiety and depression.", Link: "/resources", Type: ResourceGuide},
	{Title: "Campus Counseling Center", Description: "Find professional, confidential support right at your university.", Link: "/resources", Type: ResourceCounselor},
}
