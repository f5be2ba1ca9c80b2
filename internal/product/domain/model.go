package domain

import (
	"encoding/json"
	"strings"
)

// Product is keyed by its code; the code never changes after creation.
// Brand and Category hold a copy of a name, not a reference.
type Product struct {
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	Brand           string      `json:"brand"`
	Category        string      `json:"category"`
	Description     string      `json:"description"`
	Features        FeatureList `json:"features"`
	Stock           string      `json:"stock"`
	WhatsappMessage string      `json:"whatsapp_message"`
	ImageURL        string      `json:"image_url"`
	PDFURL          string      `json:"pdf_url"`
	Active          bool        `json:"active"`
}

// FeatureList accepts either a JSON array of strings or a single
// newline-delimited string on the wire. The admin form submits the textarea
// content as one string; stored products always carry the array form.
type FeatureList []string

func (f *FeatureList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = SplitFeatures(raw)
	return nil
}

func (f FeatureList) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(f))
}

// SplitFeatures splits a newline-delimited feature block and drops blank
// lines. Lines are kept verbatim otherwise.
func SplitFeatures(raw string) FeatureList {
	lines := strings.Split(raw, "\n")
	features := make(FeatureList, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		features = append(features, line)
	}
	return features
}

const missingCodePlaceholder = "(código sin especificar)"

// WhatsappMessage derives the contact text shown on the public product page.
// It is recomputed on every write and never accepted as input.
func WhatsappMessage(name, code string) string {
	codeDisplay := code
	if codeDisplay == "" {
		codeDisplay = missingCodePlaceholder
	}
	return "Hola, estoy interesado en el producto " + name +
		" (código " + codeDisplay + "). Lo vi en la web de Importaciones Fakunet y quiero más información."
}
