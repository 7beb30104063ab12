package repository

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func valueOrDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionFailedAt reports whether err is a cancelled transaction whose
// item at index failed its condition check.
func conditionFailedAt(err error, index int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if index < 0 || index >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[index].Code) == "ConditionalCheckFailed"
}

// updateBuilder accumulates "SET #attr = :attr" clauses.
type updateBuilder struct {
	clauses []string
	values  map[string]types.AttributeValue
	names   map[string]string
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}
}

func (b *updateBuilder) set(attr string, v types.AttributeValue) {
	b.clauses = append(b.clauses, "#"+attr+" = :"+attr)
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
}

func (b *updateBuilder) setString(attr, v string) {
	b.set(attr, &types.AttributeValueMemberS{Value: v})
}

func (b *updateBuilder) setNumber(attr string, v float64) {
	b.set(attr, &types.AttributeValueMemberN{Value: floatToString(v)})
}

func (b *updateBuilder) expression() string {
	return "SET " + strings.Join(b.clauses, ", ")
}
