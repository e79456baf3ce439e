// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/openalex-fetch/pkg/types"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"title", BuildTitleQuery("x"), "title.search:x"},
		{"title and abstract", BuildTitleAbstractQuery("x"), "title_and_abstract.search:x"},
		{"topic and type", BuildTopicTypeQuery("t1", "dataset"), "primary_topic.id:t1,type:dataset"},
		{"empty title", BuildTitleQuery(""), "title.search:"},
		{"boolean terms pass through", BuildTitleQuery(`(toxic OR "hate speech") AND corpus`), `title.search:(toxic OR "hate speech") AND corpus`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	assert.Equal(t, BuildTitleQuery("abc"), BuildTitleQuery("abc"))
	assert.Equal(t, BuildTitleAbstractQuery("abc"), BuildTitleAbstractQuery("abc"))
	assert.Equal(t, BuildTopicTypeQuery("t9", "article"), BuildTopicTypeQuery("t9", "article"))
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"title", "title_abstract", "topic_type"} {
		got, err := ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, Type(s), got)
	}

	_, err := ParseType("abstract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title, title_abstract, topic_type")

	_, err = ParseType("")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg := types.QueryConfig{Terms: "corpus", Topic: "t12262", WorkType: "dataset"}

	tests := []struct {
		typ  Type
		want string
	}{
		{TypeTitle, "title.search:corpus"},
		{TypeTitleAbstract, "title_and_abstract.search:corpus"},
		{TypeTopicType, "primary_topic.id:t12262,type:dataset"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got, err := Build(tt.typ, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Build(Type("bogus"), cfg)
	assert.Error(t, err)
}
