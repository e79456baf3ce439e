// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query builds OpenAlex filter expressions for the supported query types.
package query

import (
	"fmt"
	"strings"

	"github.com/pdiddy/openalex-fetch/pkg/types"
)

// Type selects which filter builder a run uses.
type Type string

// Accepted query types, as given to --query-type.
const (
	TypeTitle         Type = "title"
	TypeTitleAbstract Type = "title_abstract"
	TypeTopicType     Type = "topic_type"
)

// Types lists the accepted query types in the order they are documented.
func Types() []Type {
	return []Type{TypeTitle, TypeTitleAbstract, TypeTopicType}
}

// ParseType validates s against the accepted query types.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid query type %q: choose from %s", s, typeList())
}

func typeList() string {
	names := make([]string, 0, len(Types()))
	for _, t := range Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// BuildTitleQuery searches q within work titles.
func BuildTitleQuery(q string) string {
	return "title.search:" + q
}

// BuildTitleAbstractQuery searches q within work titles and abstracts.
func BuildTitleAbstractQuery(q string) string {
	return "title_and_abstract.search:" + q
}

// BuildTopicTypeQuery matches works whose primary topic is topic and whose
// type is workType. The two conditions are ANDed by the comma.
func BuildTopicTypeQuery(topic, workType string) string {
	return "primary_topic.id:" + topic + ",type:" + workType
}

// Build returns the filter expression for t, drawing its inputs from cfg.
// Input content is not validated; the API rejects malformed filters.
func Build(t Type, cfg types.QueryConfig) (string, error) {
	switch t {
	case TypeTitle:
		return BuildTitleQuery(cfg.Terms), nil
	case TypeTitleAbstract:
		return BuildTitleAbstractQuery(cfg.Terms), nil
	case TypeTopicType:
		return BuildTopicTypeQuery(cfg.Topic, cfg.WorkType), nil
	default:
		return "", fmt.Errorf("invalid query type %q: choose from %s", t, typeList())
	}
}
