package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierMeta(t *testing.T) {
	assert.Equal(t, TierMetadata{Color: "#E5E4E2", Icon: "gem"}, TierMeta("Platinum"))
	assert.Equal(t, TierMetadata{Color: "#FFD700", Icon: "crown"}, TierMeta("Gold"))
	assert.Equal(t, TierMetadata{Color: "#C0C0C0", Icon: "star"}, TierMeta("Silver"))
	assert.Equal(t, TierMetadata{Color: "#CD7F32", Icon: "award"}, TierMeta("Bronze"))
	// unknown levels render as Bronze
	assert.Equal(t, TierMeta("Bronze"), TierMeta("Diamond"))
	assert.Equal(t, TierMeta("Bronze"), TierMeta(""))
}
