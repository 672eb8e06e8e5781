package content

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		value  string
		want   Type
		wantOK bool
	}{
		{"application/json", JSON, true},
		{"application/json; charset=utf-8", JSON, true},
		{"  Application/JSON ", JSON, true},
		{"application/x-www-form-urlencoded", FormURLEncoded, true},
		{"multipart/form-data; boundary=abc", Multipart, true},
		{"application/xml", XML, true},
		{"text/xml", XML, true},
		{"text/html;charset=UTF-8", HTML, true},
		{"text/plain", Text, true},
		{"image/png", JSON, false},
		{"", JSON, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := Parse(tt.value)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Parse(%q) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestForRequest(t *testing.T) {
	tests := []struct {
		name        string
		explicit    string
		hasExplicit bool
		form        bool
		multipart   bool
		want        Negotiation
	}{
		{
			name: "default json",
			want: Negotiation{Type: JSON, Header: "application/json", Known: true},
		},
		{
			name: "form flag",
			form: true,
			want: Negotiation{Type: FormURLEncoded, Header: "application/x-www-form-urlencoded", Known: true},
		},
		{
			name:      "multipart flag",
			multipart: true,
			want:      Negotiation{Type: Multipart, Header: "multipart/form-data", Known: true},
		},
		{
			name:      "form beats multipart",
			form:      true,
			multipart: true,
			want:      Negotiation{Type: FormURLEncoded, Header: "application/x-www-form-urlencoded", Known: true},
		},
		{
			name:        "explicit header wins",
			explicit:    "text/plain",
			hasExplicit: true,
			form:        true,
			want:        Negotiation{Type: Text, Header: "text/plain", Known: true, Explicit: true},
		},
		{
			name:        "explicit unknown type",
			explicit:    "application/octet-stream",
			hasExplicit: true,
			want:        Negotiation{Type: JSON, Header: "application/octet-stream", Known: false, Explicit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForRequest(tt.explicit, tt.hasExplicit, tt.form, tt.multipart)
			if got != tt.want {
				t.Errorf("ForRequest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromResponse(t *testing.T) {
	if got := FromResponse(""); got != JSON {
		t.Errorf("FromResponse(\"\") = %v, want JSON", got)
	}
	if got := FromResponse("text/html; charset=utf-8"); got != HTML {
		t.Errorf("FromResponse(html) = %v, want HTML", got)
	}
	if got := FromResponse("application/octet-stream"); got != JSON {
		t.Errorf("FromResponse(octet-stream) = %v, want JSON", got)
	}
}

func TestMIME(t *testing.T) {
	if XML.MIME() != "application/xml" {
		t.Errorf("XML.MIME() = %q", XML.MIME())
	}
	if Text.String() != "text/plain" {
		t.Errorf("Text.String() = %q", Text.String())
	}
}
