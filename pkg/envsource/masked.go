package envsource

type maskedSource struct {
	inner Source
}

var _ Source = maskedSource{}

// Masked wraps a source so every value it returns is masked for display.
// Secrets are never shown in full to the operator.
func Masked(s Source) Source {
	return maskedSource{inner: s}
}

func (m maskedSource) Get(name string) (string, error) {
	v, err := m.inner.Get(name)
	if err != nil {
		return "", err
	}
	return Mask(v), nil
}

func (m maskedSource) Keys() ([]string, error) {
	return m.inner.Keys()
}

// Mask hides the middle of a secret, keeping four characters on either end.
// Short values are blanked out entirely.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if len(value) > 8 {
		return value[:4] + "..." + value[len(value)-4:]
	}
	return "****"
}
