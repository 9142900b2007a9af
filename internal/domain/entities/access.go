package entities

// RequestRecord is the subset of a track request relevant to authorization.
type RequestRecord struct {
	OwnerUserID      string
	GuestAccessToken string
	OwnerEmail       string
}

// ViewerContext describes who is looking at a request.
//
// IsOperator is computed once by the identity layer from the operator
// allowlist; the authorization core never sees identities.
type ViewerContext struct {
	AuthenticatedUserID string
	Email               string
	IsOperator          bool
	PresentedToken      string
}

// IsAuthenticated reports whether the viewer carries a signed-in identity.
func (v ViewerContext) IsAuthenticated() bool {
	return v.AuthenticatedUserID != ""
}

// AccessReason explains an access decision.
type AccessReason string

const (
	AccessReasonOperatorOverride AccessReason = "operator_override"
	AccessReasonOwnerMatch       AccessReason = "owner_match"
	AccessReasonWrongOwner       AccessReason = "wrong_owner"
	AccessReasonGuestTokenMatch  AccessReason = "guest_token_match"
	AccessReasonNoCredential     AccessReason = "no_credential"
)

// AccessDecision is the outcome of authorizing a viewer against a request.
//
// NeedsSignIn is set when access was granted to an anonymous token holder;
// pages use it to offer claiming the request into an account.
type AccessDecision struct {
	Granted     bool         `json:"granted"`
	Reason      AccessReason `json:"reason"`
	NeedsSignIn bool         `json:"needs_sign_in"`
}
