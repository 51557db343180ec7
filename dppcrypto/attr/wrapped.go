package attr

// WrapAttrs encodes attrs as a TLV plaintext blob and wraps it with AES-SIV,
// then packages the result as a single TypeWrappedData attribute, mirroring
// dpp_append_wrapped_data. ad0/ad1 are the frame-specific associated-data
// components named by Easy Connect §6.3.1.4 (authentication) and §6.4.1
// (configuration); either may be nil.
func WrapAttrs(key []byte, ad0, ad1 []byte, attrs []TLV) (TLV, error) {
	var plaintext []byte
	for _, a := range attrs {
		plaintext = Append(plaintext, a.Type, a.Value)
	}

	var ad [][]byte
	if ad0 != nil {
		ad = append(ad, ad0)
	}
	if ad1 != nil {
		ad = append(ad, ad1)
	}

	wrapped, err := Wrap(key, plaintext, ad)
	if err != nil {
		return TLV{}, err
	}
	return TLV{Type: TypeWrappedData, Value: wrapped}, nil
}

// UnwrapAttrs reverses WrapAttrs: it authenticates and decrypts wrapped
// (the value of a TypeWrappedData attribute) and decodes the recovered
// plaintext back into its constituent attributes.
func UnwrapAttrs(key []byte, ad0, ad1 []byte, wrapped []byte) ([]TLV, error) {
	var ad [][]byte
	if ad0 != nil {
		ad = append(ad, ad0)
	}
	if ad1 != nil {
		ad = append(ad, ad1)
	}

	plaintext, err := Unwrap(key, wrapped, ad)
	if err != nil {
		return nil, err
	}
	return All(plaintext)
}
