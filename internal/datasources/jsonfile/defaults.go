package jsonfile

import "github.com/privacytools/directory/internal/domain"

// DefaultCatalog returns the compiled-in fallback catalog, used when the
// configured source cannot be fetched at startup so the directory never
// comes up empty.
func DefaultCatalog() []domain.Item {
	items := []domain.Item{
		{
			ID:           1,
			Name:         "Signal",
			URL:          "https://signal.org",
			Description:  "Private messaging app with end-to-end encryption. Open source and nonprofit.",
			Category:     "messaging",
			Tags:         []string{"encryption", "mobile"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:            2,
			Name:          "Element",
			URL:           "https://element.io",
			Description:   "Secure collaboration and messaging app powered by Matrix protocol.",
			Category:      "messaging",
			Tags:          []string{"encryption", "federation"},
			OpenSource:    true,
			Decentralized: true,
			PrivacyLevel:  domain.PrivacyLevelHigh,
		},
		{
			ID:           3,
			Name:         "Firefox",
			URL:          "https://www.mozilla.org/firefox/",
			Description:  "Privacy-focused web browser from Mozilla. Open source with strong tracking protection.",
			Category:     "browser",
			Tags:         []string{"tracking-protection"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           4,
			Name:         "Brave",
			URL:          "https://brave.com",
			Description:  "Privacy browser that blocks ads and trackers by default.",
			Category:     "browser",
			Tags:         []string{"ad-blocking", "tracking-protection"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           5,
			Name:         "DuckDuckGo",
			URL:          "https://duckduckgo.com",
			Description:  "Privacy-focused search engine that doesn't track your searches.",
			Category:     "search",
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           6,
			Name:         "Startpage",
			URL:          "https://www.startpage.com",
			Description:  "Private search engine that shows Google results without tracking.",
			Category:     "search",
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           7,
			Name:         "Proton Mail",
			URL:          "https://proton.me/mail",
			Description:  "Secure email service with end-to-end encryption based in Switzerland.",
			Category:     "email",
			Tags:         []string{"encryption"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           8,
			Name:         "Tuta",
			URL:          "https://tuta.com",
			Description:  "Encrypted email service that's open source and ad-free.",
			Category:     "email",
			Tags:         []string{"encryption"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:            9,
			Name:          "Nextcloud",
			URL:           "https://nextcloud.com",
			Description:   "Self-hosted productivity platform with file sync, calendar, contacts, and more.",
			Category:      "storage",
			Tags:          []string{"self-hosted", "sync"},
			OpenSource:    true,
			Decentralized: true,
			PrivacyLevel:  domain.PrivacyLevelHigh,
		},
		{
			ID:           10,
			Name:         "Proton Drive",
			URL:          "https://proton.me/drive",
			Description:  "End-to-end encrypted cloud storage from Proton.",
			Category:     "storage",
			Tags:         []string{"encryption"},
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           11,
			Name:         "Mullvad VPN",
			URL:          "https://mullvad.net",
			Description:  "VPN service focused on privacy with anonymous accounts.",
			Category:     "vpn",
			Tags:         []string{"no-logs"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           12,
			Name:         "IVPN",
			URL:          "https://ivpn.net",
			Description:  "Privacy-first VPN service with strong no-logs policy.",
			Category:     "vpn",
			Tags:         []string{"no-logs"},
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:            13,
			Name:          "Mastodon",
			URL:           "https://joinmastodon.org",
			Description:   "Decentralized social network running on the Fediverse.",
			Category:      "social",
			Tags:          []string{"federation"},
			OpenSource:    true,
			Decentralized: true,
			PrivacyLevel:  domain.PrivacyLevelHigh,
		},
		{
			ID:            14,
			Name:          "Pixelfed",
			URL:           "https://pixelfed.org",
			Description:   "Decentralized image sharing platform (like Instagram).",
			Category:      "social",
			Tags:          []string{"federation"},
			OpenSource:    true,
			Decentralized: true,
			PrivacyLevel:  domain.PrivacyLevelHigh,
		},
		{
			ID:           15,
			Name:         "/e/ OS",
			URL:          "https://e.foundation",
			Description:  "Privacy-focused mobile OS based on Android, de-Googled.",
			Category:     "os",
			Tags:         []string{"mobile"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           16,
			Name:         "LineageOS",
			URL:          "https://lineageos.org",
			Description:  "Open source Android distribution for phones and tablets.",
			Category:     "os",
			Tags:         []string{"mobile"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelMedium,
		},
		{
			ID:           17,
			Name:         "Standard Notes",
			URL:          "https://standardnotes.com",
			Description:  "End-to-end encrypted note-taking app with extensions.",
			Category:     "productivity",
			Tags:         []string{"encryption", "notes"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           18,
			Name:         "Jitsi",
			URL:          "https://jitsi.org",
			Description:  "Secure, open source video conferencing platform.",
			Category:     "productivity",
			Tags:         []string{"self-hosted"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           19,
			Name:         "Bitwarden",
			URL:          "https://bitwarden.com",
			Description:  "Open source password manager with end-to-end encryption.",
			Category:     "productivity",
			Tags:         []string{"encryption", "passwords"},
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
		{
			ID:           20,
			Name:         "LibreOffice",
			URL:          "https://www.libreoffice.org",
			Description:  "Free and open source office suite, alternative to Microsoft Office.",
			Category:     "productivity",
			OpenSource:   true,
			PrivacyLevel: domain.PrivacyLevelHigh,
		},
	}

	for i := range items {
		items[i].Rating = domain.DefaultRating
	}
	return items
}
