package baasclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truffletools/azbaas/baasclient"
)

func TestResourceURL(t *testing.T) {
	t.Parallel()

	client, err := baasclient.New(testConfig())
	require.NoError(t, err)

	tests := []struct {
		name                  string
		path                  string
		withResourceGroup     bool
		withBlockchainMembers bool
		expected              string
	}{
		{
			name:                  "both segments",
			path:                  "member1/transactionNodes",
			withResourceGroup:     true,
			withBlockchainMembers: true,
			expected: "https://management.azure.com/subscriptions/sub-123/resourceGroups/rg-1/" +
				"providers/Microsoft.Blockchain/blockchainMembers/member1/transactionNodes" +
				"?api-version=2018-06-01-preview",
		},
		{
			name:                  "resource group only",
			path:                  "member1",
			withResourceGroup:     true,
			withBlockchainMembers: false,
			expected: "https://management.azure.com/subscriptions/sub-123/resourceGroups/rg-1/" +
				"providers/Microsoft.Blockchain/member1?api-version=2018-06-01-preview",
		},
		{
			name:                  "members only",
			path:                  "member1",
			withResourceGroup:     false,
			withBlockchainMembers: true,
			expected: "https://management.azure.com/subscriptions/sub-123/" +
				"providers/Microsoft.Blockchain/blockchainMembers/member1?api-version=2018-06-01-preview",
		},
		{
			name:                  "neither segment",
			path:                  "skus",
			withResourceGroup:     false,
			withBlockchainMembers: false,
			expected: "https://management.azure.com/subscriptions/sub-123/" +
				"providers/Microsoft.Blockchain/skus?api-version=2018-06-01-preview",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := client.ResourceURL(tt.path, tt.withResourceGroup, tt.withBlockchainMembers)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPortalURL(t *testing.T) {
	t.Parallel()

	client, err := baasclient.New(testConfig())
	require.NoError(t, err)

	result := client.PortalURL("member1")

	assert.Equal(t,
		"https://portal.azure.com/#@/resource/subscriptions/sub-123/resourceGroups/rg-1/"+
			"providers/Microsoft.Blockchain/blockchainMembers/member1",
		result)
}
