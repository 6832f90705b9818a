package crypto

import "strings"

// sensitiveKeyNames is the closed set of exact field names whose values are
// encrypted at rest. Matching is case-insensitive.
var sensitiveKeyNames = map[string]struct{}{
	"api_key":        {},
	"apikey":         {},
	"secret":         {},
	"password":       {},
	"webhook_url":    {},
	"signing_secret": {},
	"private_key":    {},
	"credentials":    {},
	"client_secret":  {},
}

// sensitiveKeySuffixes extends the set by suffix: bot_token, access_token,
// app_token, service_key, ... all land here.
var sensitiveKeySuffixes = []string{
	"_token",
	"_secret",
	"_password",
}

// IsSensitiveKey reports whether a config field name denotes a secret value.
func IsSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	if _, ok := sensitiveKeyNames[lower]; ok {
		return true
	}
	for _, suffix := range sensitiveKeySuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// EncryptDict walks a config document and encrypts every string value whose
// key is sensitive, at any nesting depth. Maps recurse (including nested
// metadata blobs); non-string sensitive values are left alone. The walk is
// idempotent: already-enveloped values pass through Encrypt unchanged.
func (e *Encryptor) EncryptDict(doc map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case map[string]interface{}:
			nested, err := e.EncryptDict(val)
			if err != nil {
				return nil, err
			}
			out[k] = nested
		case string:
			if IsSensitiveKey(k) {
				enc, err := e.Encrypt(val)
				if err != nil {
					return nil, err
				}
				out[k] = enc
			} else {
				out[k] = val
			}
		default:
			out[k] = v
		}
	}
	return out, nil
}

// DecryptDict is the inverse walk: every enveloped string value is decrypted.
// Unprefixed and legacy values pass through Decrypt's compatibility paths.
func (e *Encryptor) DecryptDict(doc map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case map[string]interface{}:
			nested, err := e.DecryptDict(val)
			if err != nil {
				return nil, err
			}
			out[k] = nested
		case string:
			if IsEncrypted(val) || strings.HasPrefix(val, legacyPrefix) {
				dec, err := e.Decrypt(val)
				if err != nil {
					return nil, err
				}
				out[k] = dec
			} else {
				out[k] = val
			}
		default:
			out[k] = v
		}
	}
	return out, nil
}
