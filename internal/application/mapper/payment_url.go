package mapper

import "encoding/json"

// PaymentURL extrae confirmation.confirmation_url de los datos opacos del proveedor.
// Acepta texto JSON (string, []byte, json.RawMessage, incluso un string JSON que a su vez
// contiene JSON) o un mapa ya decodificado. Ante clave ausente, forma inesperada o JSON
// inválido devuelve ("", false) y nunca un error.
func PaymentURL(data any) (string, bool) {
	switch v := data.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return "", false
		}
		m, ok := decoded.(map[string]any)
		if !ok {
			return "", false
		}
		return confirmationURL(m)
	case json.RawMessage:
		return paymentURLFromRaw(v)
	case []byte:
		return paymentURLFromRaw(v)
	case map[string]any:
		return confirmationURL(v)
	default:
		return "", false
	}
}

// paymentURLFromRaw decodifica un valor JSON almacenado: un objeto se consulta directo,
// un string se vuelve a interpretar como texto JSON.
func paymentURLFromRaw(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", false
	}
	switch v := decoded.(type) {
	case string:
		return PaymentURL(v)
	case map[string]any:
		return confirmationURL(v)
	default:
		return "", false
	}
}

func confirmationURL(m map[string]any) (string, bool) {
	confirmation, ok := m["confirmation"].(map[string]any)
	if !ok {
		return "", false
	}
	u, ok := confirmation["confirmation_url"].(string)
	if !ok || u == "" {
		return "", false
	}
	return u, true
}
