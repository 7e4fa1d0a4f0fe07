package extract

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"rfp-management-api/internal/entity"
)

const (
	titleLimit = 80
	notesLimit = 800
)

// RFPFields is what an extractor can recover from a free-text purchasing
// need. Every field except Title and Description is best effort: a field
// with no recognizable pattern in the text stays nil, which is not an error.
type RFPFields struct {
	Title          string
	Description    string
	Items          []entity.Item
	Budget         *float64
	DeliveryDays   *int
	PaymentTerms   *string
	WarrantyMonths *int
}

// ProposalFields is what an extractor can recover from a vendor's reply.
type ProposalFields struct {
	TotalPrice     *float64
	DeliveryDays   *int
	WarrantyMonths *int
	Notes          string
}

// Extractor converts raw text into structured fields. Implementations other
// than PatternExtractor may fail; callers fall back to PatternExtractor,
// which never does.
type Extractor interface {
	ExtractRFP(ctx context.Context, text string) (*RFPFields, error)
	ExtractProposal(ctx context.Context, text string) (*ProposalFields, error)
}

var (
	amountPattern     = regexp.MustCompile(`\$(\d[\d,]*)`)
	dayCountPattern   = regexp.MustCompile(`(\d+)\s*days?`)
	monthCountPattern = regexp.MustCompile(`(\d+)\s*months?`)
	netTermsPattern   = regexp.MustCompile(`net\s*(\d+)`)
)

// itemVocabulary is the fixed set of recognized item keywords. Specs are
// static defaults tied to the keyword, never read from the text.
var itemVocabulary = []struct {
	keyword      string
	qtyPattern   *regexp.Regexp
	defaultSpecs map[string]string
}{
	{"laptop", regexp.MustCompile(`(\d+)\s*laptop`), map[string]string{"ram": "16GB"}},
	{"monitor", regexp.MustCompile(`(\d+)\s*monitor`), map[string]string{"size": "27-inch"}},
}

// PatternExtractor is the deterministic extractor: a fixed rule table of
// substring and numeric patterns applied independently to the same input.
// It is pure and total — any input, including the empty string, yields a
// structurally valid result.
type PatternExtractor struct{}

func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

func (e *PatternExtractor) ExtractRFP(ctx context.Context, text string) (*RFPFields, error) {
	lower := strings.ToLower(text)

	fields := &RFPFields{
		Title:       truncate(text, titleLimit),
		Description: text,
		Items:       make([]entity.Item, 0),
	}

	// One item per recognized keyword, not per occurrence. Qty is set only
	// when a number directly precedes the keyword.
	for _, entry := range itemVocabulary {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		fields.Items = append(fields.Items, entity.Item{
			Name:  entry.keyword,
			Qty:   firstCount(entry.qtyPattern, lower),
			Specs: copySpecs(entry.defaultSpecs),
		})
	}

	fields.Budget = firstAmount(text)
	fields.DeliveryDays = firstCount(dayCountPattern, lower)
	fields.WarrantyMonths = firstCount(monthCountPattern, lower)

	if m := netTermsPattern.FindStringSubmatch(lower); m != nil {
		terms := "net " + m[1]
		fields.PaymentTerms = &terms
	}

	return fields, nil
}

func (e *PatternExtractor) ExtractProposal(ctx context.Context, text string) (*ProposalFields, error) {
	lower := strings.ToLower(text)

	return &ProposalFields{
		TotalPrice:     firstAmount(text),
		DeliveryDays:   firstCount(dayCountPattern, lower),
		WarrantyMonths: firstCount(monthCountPattern, lower),
		Notes:          truncate(text, notesLimit),
	}, nil
}

// firstAmount parses the first dollar amount in the text, e.g. "$50,000".
// Grouping commas are stripped before parsing.
func firstAmount(text string) *float64 {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return nil
	}

	return &amount
}

// firstCount returns the digits captured by the first match of the pattern.
func firstCount(pattern *regexp.Regexp, text string) *int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	count, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	return &count
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit]
}

func copySpecs(specs map[string]string) map[string]string {
	c := make(map[string]string, len(specs))
	for k, v := range specs {
		c[k] = v
	}

	return c
}
