package domain

import "strings"

// MerchantCredential is one row of the settings store.
type MerchantCredential struct {
	Key   string
	Value string
}

// CredentialKeys names the two settings a payment order needs.
type CredentialKeys struct {
	KeyID     string
	KeySecret string
}

func (k CredentialKeys) List() []string {
	return []string{k.KeyID, k.KeySecret}
}

// MerchantCredentials is the gateway key pair. KeySecret never leaves the
// service.
type MerchantCredentials struct {
	KeyID     string
	KeySecret string
}

// NewMerchantCredentials builds credentials from a key/value lookup result.
// Blank values count as missing.
func NewMerchantCredentials(values map[string]string, keys CredentialKeys) (MerchantCredentials, error) {
	var missing []string
	for _, key := range keys.List() {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return MerchantCredentials{}, &MissingCredentialsError{Missing: missing}
	}

	return MerchantCredentials{
		KeyID:     values[keys.KeyID],
		KeySecret: values[keys.KeySecret],
	}, nil
}

// CredentialsFromRows reduces settings rows to a key/value map. Later rows
// win on duplicate keys.
func CredentialsFromRows(rows []MerchantCredential) map[string]string {
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out
}
