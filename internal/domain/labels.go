package domain

import "sort"

// CategoryLabel is the display metadata for a category key. Keeping it
// here, rather than scattered through presentation templates, means every
// client renders categories the same way.
type CategoryLabel struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var categoryLabels = map[string]CategoryLabel{
	"messaging":    {Key: "messaging", Label: "Messaging", Icon: "💬"},
	"browser":      {Key: "browser", Label: "Browser", Icon: "🌐"},
	"search":       {Key: "search", Label: "Search Engine", Icon: "🔍"},
	"storage":      {Key: "storage", Label: "Cloud Storage", Icon: "☁️"},
	"os":           {Key: "os", Label: "Operating System", Icon: "💻"},
	"social":       {Key: "social", Label: "Social Media", Icon: "👥"},
	"productivity": {Key: "productivity", Label: "Productivity", Icon: "📝"},
	"vpn":          {Key: "vpn", Label: "VPN", Icon: "🔒"},
	"email":        {Key: "email", Label: "Email", Icon: "✉️"},
}

// LabelForCategory returns the display metadata for a category key. New
// category values are tolerated: unknown keys get the raw key as label.
func LabelForCategory(key string) CategoryLabel {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return CategoryLabel{Key: key, Label: key}
}

// CategoryLabels returns the known categories sorted by key.
func CategoryLabels() []CategoryLabel {
	labels := make([]CategoryLabel, 0, len(categoryLabels))
	for _, label := range categoryLabels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Key < labels[j].Key })
	return labels
}
