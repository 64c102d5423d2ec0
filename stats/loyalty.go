package stats

// TierMetadata is display-only; nothing else keys off the tier.
type TierMetadata struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// TierMeta returns the badge color and icon for a loyalty level.
// Unknown levels render as Bronze.
func TierMeta(level string) TierMetadata {
	switch level {
	case "Platinum":
		return TierMetadata{Color: "#E5E4E2", Icon: "gem"}
	case "Gold":
		return TierMetadata{Color: "#FFD700", Icon: "crown"}
	case "Silver":
		return TierMetadata{Color: "#C0C0C0", Icon: "star"}
	default:
		return TierMetadata{Color: "#CD7F32", Icon: "award"}
	}
}
