package registry

import "github.com/devutils/toolbelt/transform"

// Default returns the built-in catalog. Order matters: search falls back to
// registration order when scores tie.
func Default() *Registry {
	return New(defaultCategories(), defaultTools())
}

func defaultCategories() []Category {
	return []Category{
		{
			ID:          "encoding",
			Name:        "Encoding",
			Slug:        "encoding",
			Description: "Encode and decode text between common formats",
			Icon:        "binary",
		},
		{
			ID:          "hashing",
			Name:        "Hashing",
			Slug:        "hashing",
			Description: "Cryptographic hash and checksum digests",
			Icon:        "hash",
		},
		{
			ID:          "naming",
			Name:        "Naming",
			Slug:        "naming",
			Description: "Convert identifiers between naming conventions",
			Icon:        "type",
		},
		{
			ID:          "ciphers",
			Name:        "Ciphers",
			Slug:        "ciphers",
			Description: "Classic substitution ciphers and text tricks",
			Icon:        "lock",
		},
		{
			ID:          "formatting",
			Name:        "Formatting",
			Slug:        "formatting",
			Description: "Pretty-print, minify and reshape text",
			Icon:        "braces",
		},
		{
			ID:          "generators",
			Name:        "Generators",
			Slug:        "generators",
			Description: "Generate identifiers, timestamps and random values",
			Icon:        "sparkles",
		},
	}
}

func defaultTools() []Tool {
	return []Tool{
		// encoding
		{
			ID:          "base64-encode",
			Name:        "Base64 Encode",
			Slug:        "base64-encode",
			Description: "Encode text to Base64",
			CategoryID:  "encoding",
			Keywords:    []string{"b64", "encode"},
			Fn:          transform.Base64Encode,
		},
		{
			ID:          "base64-decode",
			Name:        "Base64 Decode",
			Slug:        "base64-decode",
			Description: "Decode Base64 back to plain text",
			CategoryID:  "encoding",
			Keywords:    []string{"b64", "decode"},
			Fn:          transform.Base64Decode,
		},
		{
			ID:          "url-encode",
			Name:        "URL Encode",
			Slug:        "url-encode",
			Description: "Percent-encode text for use in URLs",
			CategoryID:  "encoding",
			Keywords:    []string{"percent", "escape", "uri"},
			Fn:          transform.URLEncode,
		},
		{
			ID:          "url-decode",
			Name:        "URL Decode",
			Slug:        "url-decode",
			Description: "Decode percent-encoded URL text",
			CategoryID:  "encoding",
			Keywords:    []string{"percent", "unescape", "uri"},
			Fn:          transform.URLDecode,
		},
		{
			ID:          "hex-encode",
			Name:        "Hex Encode",
			Slug:        "hex-encode",
			Description: "Encode text to hexadecimal",
			CategoryID:  "encoding",
			Keywords:    []string{"hexadecimal", "base16"},
			Fn:          transform.HexEncode,
		},
		{
			ID:          "hex-decode",
			Name:        "Hex Decode",
			Slug:        "hex-decode",
			Description: "Decode hexadecimal back to plain text",
			CategoryID:  "encoding",
			Keywords:    []string{"hexadecimal", "base16"},
			Fn:          transform.HexDecode,
		},
		{
			ID:          "html-escape",
			Name:        "HTML Escape",
			Slug:        "html-escape",
			Description: "Escape special characters as HTML entities",
			CategoryID:  "encoding",
			Keywords:    []string{"entities", "escape"},
			Fn:          transform.HTMLEscape,
		},
		{
			ID:          "html-unescape",
			Name:        "HTML Unescape",
			Slug:        "html-unescape",
			Description: "Convert HTML entities back to characters",
			CategoryID:  "encoding",
			Keywords:    []string{"entities", "unescape"},
			Fn:          transform.HTMLUnescape,
		},

		// hashing
		{
			ID:          "md5",
			Name:        "MD5 Hash",
			Slug:        "md5",
			Description: "Compute the MD5 digest of text",
			CategoryID:  "hashing",
			Keywords:    []string{"checksum", "digest"},
			Fn:          transform.MD5Hash,
		},
		{
			ID:          "sha1",
			Name:        "SHA-1 Hash",
			Slug:        "sha1",
			Description: "Compute the SHA-1 digest of text",
			CategoryID:  "hashing",
			Keywords:    []string{"checksum", "digest"},
			Fn:          transform.SHA1Hash,
		},
		{
			ID:          "sha256",
			Name:        "SHA-256 Hash",
			Slug:        "sha256",
			Description: "Compute the SHA-256 digest of text",
			CategoryID:  "hashing",
			Keywords:    []string{"checksum", "digest"},
			Fn:          transform.SHA256Hash,
		},
		{
			ID:          "sha512",
			Name:        "SHA-512 Hash",
			Slug:        "sha512",
			Description: "Compute the SHA-512 digest of text",
			CategoryID:  "hashing",
			Keywords:    []string{"checksum", "digest"},
			Fn:          transform.SHA512Hash,
		},

		// naming
		{
			ID:          "camel-case",
			Name:        "Camel Case",
			Slug:        "camel-case",
			Description: "Convert text to camelCase",
			CategoryID:  "naming",
			Keywords:    []string{"camelcase", "convention"},
			Fn:          transform.CamelCase,
		},
		{
			ID:          "pascal-case",
			Name:        "Pascal Case",
			Slug:        "pascal-case",
			Description: "Convert text to PascalCase",
			CategoryID:  "naming",
			Keywords:    []string{"pascalcase", "convention"},
			Fn:          transform.PascalCase,
		},
		{
			ID:          "snake-case",
			Name:        "Snake Case",
			Slug:        "snake-case",
			Description: "Convert text to snake_case",
			CategoryID:  "naming",
			Keywords:    []string{"snakecase", "underscore"},
			Fn:          transform.SnakeCase,
		},
		{
			ID:          "kebab-case",
			Name:        "Kebab Case",
			Slug:        "kebab-case",
			Description: "Convert text to kebab-case",
			CategoryID:  "naming",
			Keywords:    []string{"kebabcase", "dash"},
			Fn:          transform.KebabCase,
		},
		{
			ID:          "constant-case",
			Name:        "Constant Case",
			Slug:        "constant-case",
			Description: "Convert text to CONSTANT_CASE",
			CategoryID:  "naming",
			Keywords:    []string{"constantcase", "macro"},
			Fn:          transform.ConstantCase,
		},
		{
			ID:          "title-case",
			Name:        "Title Case",
			Slug:        "title-case",
			Description: "Capitalize the first letter of every word",
			CategoryID:  "naming",
			Keywords:    []string{"titlecase", "capitalize"},
			Fn:          transform.TitleCase,
		},
		{
			ID:          "slugify",
			Name:        "Slugify",
			Slug:        "slugify",
			Description: "Turn text into a URL-safe slug",
			CategoryID:  "naming",
			Keywords:    []string{"slug", "url"},
			Fn:          transform.Slugify,
		},

		// ciphers
		{
			ID:          "rot13",
			Name:        "ROT13",
			Slug:        "rot13",
			Description: "Rotates letters 13 positions",
			CategoryID:  "ciphers",
			Keywords:    []string{"rot", "caesar", "cipher"},
			Fn:          transform.ROT13,
		},
		{
			ID:          "rot47",
			Name:        "ROT47",
			Slug:        "rot47",
			Description: "Rotates printable characters 47 positions",
			CategoryID:  "ciphers",
			Keywords:    []string{"rot", "caesar", "cipher"},
			Fn:          transform.ROT47,
		},
		{
			ID:          "caesar-cipher",
			Name:        "Caesar Cipher",
			Slug:        "caesar-cipher",
			Description: "Shift letters by the classic offset of three",
			CategoryID:  "ciphers",
			Keywords:    []string{"shift", "cipher"},
			Fn:          transform.CaesarCipher,
		},
		{
			ID:          "reverse-text",
			Name:        "Reverse Text",
			Slug:        "reverse-text",
			Description: "Reverse the characters of the input",
			CategoryID:  "ciphers",
			Keywords:    []string{"mirror", "backwards"},
			Fn:          transform.ReverseText,
		},

		// formatting
		{
			ID:          "json-prettify",
			Name:        "JSON Prettify",
			Slug:        "json-prettify",
			Description: "Format JSON with two-space indentation",
			CategoryID:  "formatting",
			Keywords:    []string{"json", "format", "beautify"},
			Fn:          transform.JSONPrettify,
		},
		{
			ID:          "json-minify",
			Name:        "JSON Minify",
			Slug:        "json-minify",
			Description: "Strip whitespace from JSON",
			CategoryID:  "formatting",
			Keywords:    []string{"json", "compact"},
			Fn:          transform.JSONMinify,
		},
		{
			ID:          "uppercase",
			Name:        "Uppercase",
			Slug:        "uppercase",
			Description: "Convert text to upper case",
			CategoryID:  "formatting",
			Keywords:    []string{"upper", "capital"},
			Fn:          transform.Uppercase,
		},
		{
			ID:          "lowercase",
			Name:        "Lowercase",
			Slug:        "lowercase",
			Description: "Convert text to lower case",
			CategoryID:  "formatting",
			Keywords:    []string{"lower"},
			Fn:          transform.Lowercase,
		},
		{
			ID:          "text-stats",
			Name:        "Text Statistics",
			Slug:        "text-stats",
			Description: "Count characters, words and lines",
			CategoryID:  "formatting",
			Keywords:    []string{"count", "words", "characters"},
			Fn:          transform.TextStats,
		},

		// generators
		{
			ID:          "uuid-generator",
			Name:        "UUID Generator",
			Slug:        "uuid-generator",
			Description: "Generate a random v4 UUID",
			CategoryID:  "generators",
			Keywords:    []string{"uuid", "guid", "random"},
			Fn:          transform.NewUUID,
		},
		{
			ID:          "timestamp-converter",
			Name:        "Timestamp Converter",
			Slug:        "timestamp-converter",
			Description: "Convert between Unix epoch seconds and RFC 3339",
			CategoryID:  "generators",
			Keywords:    []string{"unix", "epoch", "date"},
			Fn:          transform.ConvertTimestamp,
		},
	}
}
