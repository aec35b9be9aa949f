package baasclient

// listResult is the ARM collection envelope.
type listResult[T any] struct {
	Value []T `json:"value"`
}

type Consortium struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Type       string               `json:"type"`
	Location   string               `json:"location"`
	Properties ConsortiumProperties `json:"properties"`
}

type ConsortiumProperties struct {
	Consortium                         string `json:"consortium"`
	Protocol                           string `json:"protocol"`
	DNS                                string `json:"dns"`
	UserName                           string `json:"userName"`
	ProvisioningState                  string `json:"provisioningState"`
	RootContractAddress                string `json:"rootContractAddress"`
	ConsortiumManagementAccountAddress string `json:"consortiumManagementAccountAddress"`
}

type ConsortiumMember struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	SubscriptionID string `json:"subscriptionId"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	JoinDate       string `json:"joinDate"`
	DateModified   string `json:"dateModified"`
}

type TransactionNode struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	Location   string                    `json:"location"`
	Properties TransactionNodeProperties `json:"properties"`
}

type TransactionNodeProperties struct {
	ProvisioningState string `json:"provisioningState"`
	DNS               string `json:"dns"`
	PublicKey         string `json:"publicKey"`
	UserName          string `json:"userName"`
}

type AccessKeys struct {
	Keys []AccessKey `json:"keys"`
}

type AccessKey struct {
	KeyName string `json:"keyName"`
	Value   string `json:"value"`
}

type Sku struct {
	ResourceType string   `json:"resourceType"`
	Name         string   `json:"name"`
	Tier         string   `json:"tier"`
	Locations    []string `json:"locations"`
}

type NameAvailability struct {
	Message       string `json:"message"`
	NameAvailable bool   `json:"nameAvailable"`
	Reason        string `json:"reason"`
}

type nameAvailabilityRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ConsortiumCreateParams struct {
	Location   string                     `json:"location"`
	Sku        SkuRef                     `json:"sku"`
	Properties ConsortiumCreateProperties `json:"properties"`
}

type SkuRef struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

type ConsortiumCreateProperties struct {
	Consortium                          string `json:"consortium"`
	Protocol                            string `json:"protocol"`
	Password                            string `json:"password"`
	ConsortiumManagementAccountPassword string `json:"consortiumManagementAccountPassword"`
}
