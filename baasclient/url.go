package baasclient

import "strings"

const (
	providerNamespace  = "Microsoft.Blockchain"
	memberResourceType = providerNamespace + "/blockchainMembers"
	portalBaseURL      = "https://portal.azure.com"
)

// ResourceURL builds a fully qualified management URL for a relative path.
// The two flags splice in the resourceGroups/{rg}/ and blockchainMembers/
// segments. Path segments are not escaped; callers supply already-safe
// identifiers.
func (c *Client) ResourceURL(path string, withResourceGroup, withBlockchainMembers bool) string {
	var b strings.Builder

	b.WriteString(c.cfg.BaseURL)
	b.WriteString("/subscriptions/")
	b.WriteString(c.cfg.SubscriptionID)
	b.WriteString("/")

	if withResourceGroup {
		b.WriteString("resourceGroups/")
		b.WriteString(c.cfg.ResourceGroup)
		b.WriteString("/")
	}

	b.WriteString("providers/")
	b.WriteString(providerNamespace)
	b.WriteString("/")

	if withBlockchainMembers {
		b.WriteString("blockchainMembers/")
	}

	b.WriteString(path)
	b.WriteString("?api-version=")
	b.WriteString(c.cfg.APIVersion)

	return b.String()
}

// PortalURL is the Azure-portal link to a blockchain member resource,
// opened in the browser after a successful consortium creation.
func (c *Client) PortalURL(memberName string) string {
	return portalBaseURL + "/#@/resource/subscriptions/" + c.cfg.SubscriptionID +
		"/resourceGroups/" + c.cfg.ResourceGroup +
		"/providers/" + memberResourceType + "/" + memberName
}
