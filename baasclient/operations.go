package baasclient

import (
	"context"
	"fmt"
	"net/http"
)

// ListConsortia lists the blockchain members in the configured resource
// group, one per consortium the subscription participates in.
func (c *Client) ListConsortia(ctx context.Context) ([]Consortium, error) {
	var out listResult[Consortium]

	url := c.ResourceURL("", true, true)
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}

	return out.Value, nil
}

// ListConsortiumMembers lists the participants of the consortium the named
// member belongs to.
func (c *Client) ListConsortiumMembers(ctx context.Context, memberName string) ([]ConsortiumMember, error) {
	var out listResult[ConsortiumMember]

	url := c.ResourceURL(memberName+"/ConsortiumMembers", true, true)
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}

	return out.Value, nil
}

func (c *Client) ListTransactionNodes(ctx context.Context, memberName string) ([]TransactionNode, error) {
	var out listResult[TransactionNode]

	url := c.ResourceURL(memberName+"/transactionNodes", true, true)
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}

	return out.Value, nil
}

// GetTransactionNodeAccessKeys fetches the API keys for a transaction node.
// The default node shares its member's name and lives on a shorter path.
func (c *Client) GetTransactionNodeAccessKeys(ctx context.Context, memberName, nodeName string) (*AccessKeys, error) {
	path := memberName + "/listApiKeys"
	if nodeName != memberName {
		path = memberName + "/transactionNodes/" + nodeName + "/listApiKeys"
	}

	var out AccessKeys

	url := c.ResourceURL(path, true, true)
	if err := c.do(ctx, http.MethodPost, url, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListSkus lists the SKUs the provider offers; the path carries neither a
// resource group nor a blockchainMembers segment.
func (c *Client) ListSkus(ctx context.Context) ([]Sku, error) {
	var out listResult[Sku]

	url := c.ResourceURL("skus", false, false)
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, err
	}

	return out.Value, nil
}

func (c *Client) CheckNameAvailability(ctx context.Context, name string) (*NameAvailability, error) {
	body := nameAvailabilityRequest{
		Name: name,
		Type: memberResourceType,
	}

	var out NameAvailability

	url := c.ResourceURL("locations/"+c.cfg.Location+"/checkNameAvailability", false, false)
	if err := c.do(ctx, http.MethodPost, url, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateConsortium provisions a new consortium with memberName as its first
// member. Unlike the other operations it accepts the whole 2xx range: the
// provisioning endpoint answers 200 or 201 depending on whether the
// deployment is already underway. On success the Azure-portal page for the
// new member is opened in the external browser, exactly once.
func (c *Client) CreateConsortium(ctx context.Context, memberName string, params ConsortiumCreateParams) error {
	url := c.ResourceURL(memberName, true, true)

	resp, respBody, err := c.send(ctx, http.MethodPut, url, params)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := newStatusError(resp.StatusCode, string(respBody))
		c.telemetry.Exception(http.MethodPut+" "+url, statusErr)
		c.notifier.Error(fmt.Sprintf("failed to create consortium %q: %s", memberName, statusErr.Error()))

		return statusErr
	}

	portal := c.PortalURL(memberName)
	if err := c.opener.OpenURL(portal); err != nil {
		c.logger.Warn().Err(err).Str("url", portal).Msg("failed to open portal page")
	}

	return nil
}
