package search

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType is the part of a tutorial a condition looks at
type FieldType string

const (
	FieldCategory FieldType = "category"
	FieldKey      FieldType = "key"
	FieldTitle    FieldType = "title"
	FieldStep     FieldType = "step"
	FieldText     FieldType = "text"
)

// Operator joins two conditions
type Operator string

const (
	OperatorAND Operator = "AND"
	OperatorOR  Operator = "OR"
)

// Condition is a single search term, optionally scoped to a field
type Condition struct {
	Field  FieldType
	Value  string
	Negate bool
}

// Query is a parsed search query. Logic holds the operator between
// consecutive conditions and has one entry less than Conditions.
type Query struct {
	Conditions []Condition
	Logic      []Operator
	Raw        string
}

// Parser turns query strings like `category:seller "cierre de turno"`
// into a Query
type Parser struct {
	fieldPattern      *regexp.Regexp
	emptyFieldPattern *regexp.Regexp
	quotedPattern     *regexp.Regexp
}

// NewParser creates a query parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:      regexp.MustCompile(`^(\w+):(.+)$`),
		emptyFieldPattern: regexp.MustCompile(`^\w+:$`),
		quotedPattern:     regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a query. An empty query has no conditions and matches
// everything.
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}

	tokens, err := p.tokenize(input)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch strings.ToUpper(token) {
		case "AND", "OR":
			if len(query.Logic) >= len(query.Conditions) {
				return nil, fmt.Errorf("unexpected operator %s", token)
			}
			query.Logic = append(query.Logic, Operator(strings.ToUpper(token)))
			continue
		case "NOT":
			i++
			if i >= len(tokens) || isOperator(tokens[i]) {
				return nil, fmt.Errorf("NOT operator requires a condition")
			}
			cond, err := p.parseCondition(tokens[i])
			if err != nil {
				return nil, err
			}
			cond.Negate = true
			query.addCondition(cond)
			continue
		}

		cond, err := p.parseCondition(token)
		if err != nil {
			return nil, err
		}
		query.addCondition(cond)
	}

	if len(query.Conditions) > 0 && len(query.Logic) != len(query.Conditions)-1 {
		return nil, fmt.Errorf("query ends with an operator")
	}

	return query, nil
}

// addCondition appends a condition, joining it with AND unless an
// explicit operator came before it
func (q *Query) addCondition(cond Condition) {
	if len(q.Conditions) > 0 && len(q.Logic) < len(q.Conditions) {
		q.Logic = append(q.Logic, OperatorAND)
	}
	q.Conditions = append(q.Conditions, cond)
}

func isOperator(token string) bool {
	switch strings.ToUpper(token) {
	case "AND", "OR", "NOT":
		return true
	}
	return false
}

func (p *Parser) parseCondition(token string) (Condition, error) {
	if p.emptyFieldPattern.MatchString(token) {
		return Condition{}, fmt.Errorf("field %s has no value", strings.TrimSuffix(token, ":"))
	}

	matches := p.fieldPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return Condition{Field: FieldText, Value: p.unquote(token)}, nil
	}

	value := p.unquote(matches[2])
	if value == "" {
		return Condition{}, fmt.Errorf("field %s has no value", matches[1])
	}
	switch field := FieldType(strings.ToLower(matches[1])); field {
	case FieldCategory, FieldKey, FieldTitle, FieldStep, FieldText:
		return Condition{Field: field, Value: value}, nil
	default:
		return Condition{}, fmt.Errorf("unknown field: %s (use category, key, title, step or text)", matches[1])
	}
}

// tokenize splits on spaces outside double quotes
func (p *Parser) tokenize(input string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unclosed quote in %q", input)
	}
	flush()

	return tokens, nil
}

func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}
