package body

import (
	"testing"

	"github.com/ideaspaper/xcurl/pkg/content"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
)

func TestEncode(t *testing.T) {
	ab := []models.KV{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

	tests := []struct {
		name   string
		fields []models.KV
		ct     content.Type
		want   string
	}{
		{"json", ab, content.JSON, `{"a":"1","b":"2"}`},
		{"form", ab, content.FormURLEncoded, "a=1&b=2"},
		{"multipart", ab, content.Multipart, "a=1&b=2"},
		{
			name:   "json last duplicate wins",
			fields: []models.KV{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}},
			ct:     content.JSON,
			want:   `{"a":"2"}`,
		},
		{
			name:   "json does not escape html",
			fields: []models.KV{{Key: "q", Value: "<a&b>"}},
			ct:     content.JSON,
			want:   `{"q":"<a&b>"}`,
		},
		{
			name:   "form keeps repeated keys in order",
			fields: []models.KV{{Key: "t", Value: "2"}, {Key: "a", Value: "x"}, {Key: "t", Value: "1"}},
			ct:     content.FormURLEncoded,
			want:   "t=2&a=x&t=1",
		},
		{
			name:   "form keeps brackets and escapes values",
			fields: []models.KV{{Key: "tags[1]", Value: "a b"}, {Key: "meta[k]", Value: "x&y=z"}},
			ct:     content.FormURLEncoded,
			want:   "tags[1]=a+b&meta[k]=x%26y%3Dz",
		},
		{"no fields no body", nil, content.JSON, ""},
		{"no fields form", nil, content.FormURLEncoded, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.fields, tt.ct)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	fields := []models.KV{{Key: "a", Value: "1"}}

	for _, ct := range []content.Type{content.XML, content.HTML, content.Text} {
		t.Run(ct.MIME(), func(t *testing.T) {
			if _, err := Encode(nil, ct); !errors.Is(err, errors.ErrUnsupportedEncoding) {
				t.Errorf("Encode(nil) expected ErrUnsupportedEncoding, got %v", err)
			}

			_, err := Encode(fields, ct)
			if !errors.Is(err, errors.ErrUnsupportedEncoding) {
				t.Fatalf("expected ErrUnsupportedEncoding, got %v", err)
			}
			var encErr *errors.EncodingError
			if !errors.As(err, &encErr) {
				t.Fatal("expected *EncodingError")
			}
			if encErr.ContentType != ct.MIME() {
				t.Errorf("ContentType = %q, want %q", encErr.ContentType, ct.MIME())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("no text", func(t *testing.T) {
		kind, out, err := Format(nil, content.JSON)
		if err != nil || kind != "" || out != nil {
			t.Errorf("Format(nil) = %q, %v, %v", kind, out, err)
		}
	})

	t.Run("json pretty printed keeping order", func(t *testing.T) {
		kind, out, err := Format(str(`{"b":1,"a":[true,null]}`+"\n"), content.JSON)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		want := "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}"
		if kind != KindJSON || out == nil || *out != want {
			t.Errorf("Format() = %q, %q; want json, %q", kind, deref(out), want)
		}
	})

	t.Run("json keeps number precision", func(t *testing.T) {
		_, out, err := Format(str(`{"id":12345678901234567890}`), content.JSON)
		if err != nil {
			t.Fatal(err)
		}
		if *out != "{\n  \"id\": 12345678901234567890\n}" {
			t.Errorf("unexpected output %q", *out)
		}
	})

	t.Run("invalid json is malformed body", func(t *testing.T) {
		_, _, err := Format(str("<html>oops</html>"), content.JSON)
		if !errors.Is(err, errors.ErrMalformedBody) {
			t.Errorf("expected ErrMalformedBody, got %v", err)
		}
	})

	passthrough := []struct {
		ct   content.Type
		kind string
	}{
		{content.XML, KindXML},
		{content.HTML, KindHTML},
		{content.Text, KindText},
		{content.FormURLEncoded, KindText},
		{content.Multipart, KindText},
	}
	for _, tt := range passthrough {
		t.Run("passthrough "+tt.ct.MIME(), func(t *testing.T) {
			in := "  <raw> not json \n"
			kind, out, err := Format(&in, tt.ct)
			if err != nil {
				t.Fatal(err)
			}
			if kind != tt.kind || *out != in {
				t.Errorf("Format() = %q, %q; want %q, %q", kind, *out, tt.kind, in)
			}
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
