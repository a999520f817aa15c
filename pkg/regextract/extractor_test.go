package regextract_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regextract/regextract-go/pkg/regextract"
	"github.com/regextract/regextract-go/pkg/regextract/pattern"
)

var allCategories = []regextract.Category{
	regextract.CategoryEmails,
	regextract.CategoryURLs,
	regextract.CategoryPhoneNumbers,
	regextract.CategoryCreditCards,
	regextract.CategoryTimes24Hour,
	regextract.CategoryTimes12Hour,
	regextract.CategoryHTMLTags,
	regextract.CategoryHashtags,
	regextract.CategoryCurrencyAmounts,
}

func TestCategories(t *testing.T) {
	assert.Equal(t, allCategories, regextract.Categories())
}

func TestExtract_EmptyText(t *testing.T) {
	for _, c := range allCategories {
		t.Run(string(c), func(t *testing.T) {
			got, err := regextract.Extract(c, "")
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestExtract_Unrecognized(t *testing.T) {
	for _, text := range []string{"", "user@example.com", "anything at all"} {
		got, err := regextract.Extract("not_a_real_type", text)
		require.Error(t, err)
		assert.Nil(t, got)

		assert.True(t, errors.Is(err, regextract.ErrUnrecognizedDataType))
		var dtErr *regextract.UnrecognizedDataTypeError
		require.True(t, errors.As(err, &dtErr))
		assert.Equal(t, "not_a_real_type", dtErr.Name)
		assert.Equal(t, `data type "not_a_real_type" not recognized`, err.Error())
	}
}

func TestExtract_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		category regextract.Category
		text     string
		want     []string
	}{
		{
			name:     "emails",
			category: regextract.CategoryEmails,
			text:     "Contact user@example.com or firstname.lastname@company.co.uk.",
			want:     []string{"user@example.com", "firstname.lastname@company.co.uk"},
		},
		{
			name:     "phone numbers",
			category: regextract.CategoryPhoneNumbers,
			text:     "Call me at (123) 456-7890 or 123-456-7890.",
			want:     []string{"(123) 456-7890", "123-456-7890"},
		},
		{
			name:     "24 hour times",
			category: regextract.CategoryTimes24Hour,
			text:     "The meeting is at 14:30 or 2:30 PM.",
			want:     []string{"14:30"},
		},
		{
			name:     "12 hour times",
			category: regextract.CategoryTimes12Hour,
			text:     "The meeting is at 14:30 or 2:30 PM.",
			want:     []string{"2:30 PM"},
		},
		{
			name:     "html tags",
			category: regextract.CategoryHTMLTags,
			text:     `<p>This is a paragraph.</p> <div class="example"></div>`,
			want:     []string{"<p>", "</p>", `<div class="example">`, "</div>"},
		},
		{
			name:     "currency amounts",
			category: regextract.CategoryCurrencyAmounts,
			text:     "The cost is $19.99 or $1,234.56.",
			want:     []string{"$19.99", "$1,234.56"},
		},
		{
			name:     "urls",
			category: regextract.CategoryURLs,
			text:     "URL: https://www.example.com, call (123) 456-7890",
			want:     []string{"https://www.example.com"},
		},
		{
			name:     "credit cards",
			category: regextract.CategoryCreditCards,
			text:     "Use credit card 1234 5678 9012 3456 or 1234-5678-9012-3456.",
			want:     []string{"1234 5678 9012 3456", "1234-5678-9012-3456"},
		},
		{
			name:     "hashtags",
			category: regextract.CategoryHashtags,
			text:     "Hashtags: #AIrocks #AIrocks",
			want:     []string{"#AIrocks", "#AIrocks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := regextract.Extract(tt.category, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "Mail a@b.io at 10:15 am, pay $3.50 #twice #twice"
	for _, c := range allCategories {
		first, err := regextract.Extract(c, text)
		require.NoError(t, err)
		second, err := regextract.Extract(c, text)
		require.NoError(t, err)
		assert.Equal(t, first, second, "category %s", c)
	}
}

func TestExtractAll_Keys(t *testing.T) {
	for _, text := range []string{"", "nothing to see", "a@b.io #tag $1 <b> 23:59 1:00pm"} {
		report := regextract.ExtractAll(text)
		require.Len(t, report, len(allCategories))
		for _, c := range allCategories {
			got, ok := report[c]
			require.True(t, ok, "missing key %s", c)
			assert.NotNil(t, got)
		}
	}
}

func TestExtractAll_MatchesExtract(t *testing.T) {
	text := `For inquiries, email user@example.com or visit our site at https://www.example.com.
You can call us at (123) 456-7890 or 123-456-7890. Our team is available at 2:30 PM or 14:30.
Credit cards: 1234 5678 9012 3456 and 1234-5678-9012-3456. Hashtag: #MyNewProject. Price: $19.99.
HTML tags like <div class="container"> can be found in the HTML.`

	report := regextract.ExtractAll(text)
	for _, c := range allCategories {
		want, err := regextract.Extract(c, text)
		require.NoError(t, err)
		assert.Equal(t, want, report[c], "category %s", c)
	}
	assert.Equal(t, []string{"2:30 PM"}, report[regextract.CategoryTimes12Hour])
	assert.Equal(t, []string{"14:30"}, report[regextract.CategoryTimes24Hour])
	assert.Equal(t, []string{`<div class="container">`}, report[regextract.CategoryHTMLTags])
}

func TestReport_Total(t *testing.T) {
	report := regextract.Report{
		regextract.CategoryEmails:   {"a@b.io"},
		regextract.CategoryHashtags: {"#x", "#y"},
		regextract.CategoryURLs:     {},
	}
	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 0, regextract.Report{}.Total())
}

func TestNew_Default(t *testing.T) {
	ex, err := regextract.New()
	require.NoError(t, err)
	assert.Equal(t, allCategories, ex.Categories())

	infos := ex.Describe()
	require.Len(t, infos, len(allCategories))
	for _, info := range infos {
		assert.True(t, info.Builtin)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Pattern)
	}
}

func TestNew_InvalidChunkSize(t *testing.T) {
	_, err := regextract.New(regextract.WithChunkSize(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk size")
}

func TestNew_WithPatternFile(t *testing.T) {
	pf, err := pattern.LoadBytes([]byte(`version: 1
patterns:
  - name: order_ids
    description: shop order numbers
    regex: '\bORD-\d{6}\b'
    exclude: '^ORD-000000$'
`))
	require.NoError(t, err)

	ex, err := regextract.New(regextract.WithPatternFile(pf), regextract.WithPatternFile(nil))
	require.NoError(t, err)

	cats := ex.Categories()
	require.Len(t, cats, len(allCategories)+1)
	assert.Equal(t, regextract.Category("order_ids"), cats[len(cats)-1])

	got, err := ex.Extract("order_ids", "ORD-123456, ORD-000000 and ORD-654321")
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-123456", "ORD-654321"}, got)

	report := ex.ExtractAll("email x@y.io re ORD-111111")
	assert.Len(t, report, len(allCategories)+1)
	assert.Equal(t, []string{"ORD-111111"}, report["order_ids"])
	assert.Equal(t, []string{"x@y.io"}, report[regextract.CategoryEmails])

	infos := ex.Describe()
	last := infos[len(infos)-1]
	assert.False(t, last.Builtin)
	assert.Equal(t, "shop order numbers", last.Description)

	// The default extractor is unaffected.
	_, err = regextract.Extract("order_ids", "ORD-123456")
	assert.ErrorIs(t, err, regextract.ErrUnrecognizedDataType)
}

func TestNew_DuplicateBuiltinName(t *testing.T) {
	pf := &pattern.PatternFile{
		Version:  1,
		Patterns: []pattern.Pattern{{Name: "emails", Regex: `\S+@\S+`}},
	}
	_, err := regextract.New(regextract.WithPatternFile(pf))
	require.Error(t, err)
	var dupErr *regextract.DuplicateCategoryError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "emails", dupErr.Name)
}

func TestNew_DuplicateAcrossFiles(t *testing.T) {
	pf := &pattern.PatternFile{
		Version:  1,
		Patterns: []pattern.Pattern{{Name: "tickets", Regex: `TCK-\d+`}},
	}
	_, err := regextract.New(regextract.WithPatternFile(pf), regextract.WithPatternFile(pf))
	var dupErr *regextract.DuplicateCategoryError
	require.True(t, errors.As(err, &dupErr))
}

func TestNew_InvalidPattern(t *testing.T) {
	pf := &pattern.PatternFile{
		Version:  1,
		Patterns: []pattern.Pattern{{Name: "broken", Regex: `(unclosed`}},
	}
	_, err := regextract.New(regextract.WithPatternFile(pf))
	var patErr *pattern.PatternError
	require.True(t, errors.As(err, &patErr))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ex, err := regextract.New(regextract.WithLogger(logger))
	require.NoError(t, err)

	_, err = ex.Extract("bogus", "text")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "unrecognized data type requested")
	assert.Contains(t, buf.String(), "data_type=bogus")

	buf.Reset()
	ex.ExtractAll("x")
	assert.Contains(t, buf.String(), "scanning category")
	assert.Contains(t, buf.String(), "data_type=currency_amounts")
}
