package lookup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/define/internal/lookup"
	"codeberg.org/snonux/define/internal/testutil"
)

func newDefinitions() *testutil.MockDefinitionSource {
	return &testutil.MockDefinitionSource{
		Result: &lookup.Result{
			Headword:         lookup.Ptr("ubiquitous"),
			PhoneticSpelling: lookup.Ptr("juːˈbɪkwɪtəs"),
			Definition:       lookup.Ptr("seeming to be everywhere"),
			Example:          lookup.Ptr("Mobile phones are ubiquitous these days."),
			AudioURL:         lookup.Ptr("http://media.example/ubiquitous.mp3"),
		},
	}
}

func TestLookup_EmptyPhrase(t *testing.T) {
	modes := []lookup.Mode{
		lookup.ModeAll, lookup.ModeDefinition, lookup.ModeThesaurus, lookup.ModePronounce,
		lookup.ModeExample, lookup.ModeFrench, lookup.ModeGerman,
	}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			defs := newDefinitions()
			syns := &testutil.MockSynonymSource{}
			trans := &testutil.MockTranslator{}
			agg := lookup.NewAggregator(defs, syns, trans, nil, nil)

			for _, phrase := range []string{"", "   "} {
				_, err := agg.Lookup(context.Background(), mode, phrase)
				require.Error(t, err)
				assert.True(t, errors.Is(err, lookup.ErrNoPhraseGiven))
				assert.Equal(t, "No phrase given", err.Error())
			}

			assert.Empty(t, defs.Calls)
			assert.Empty(t, syns.Calls)
			assert.Empty(t, trans.Calls)
		})
	}
}

func TestLookup_DefinitionOnly(t *testing.T) {
	defs := newDefinitions()
	agg := lookup.NewAggregator(defs, &testutil.MockSynonymSource{}, &testutil.MockTranslator{}, nil, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModeDefinition, "ubiquitous")
	require.NoError(t, err)

	assert.Equal(t, "ubiquitous [juːˈbɪkwɪtəs]: seeming to be everywhere", lookup.Format(lookup.ModeDefinition, r))
	assert.Nil(t, r.Example, "definition mode must not carry the example")
	assert.Nil(t, r.Synonyms)
	assert.Empty(t, r.Translations)
	assert.Equal(t, []string{"DEFINE ubiquitous"}, defs.Calls)
}

func TestLookup_ExampleOnly(t *testing.T) {
	defs := newDefinitions()
	agg := lookup.NewAggregator(defs, &testutil.MockSynonymSource{}, &testutil.MockTranslator{}, nil, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModeExample, "ubiquitous")
	require.NoError(t, err)
	assert.Equal(t, "Mobile phones are ubiquitous these days.", lookup.Format(lookup.ModeExample, r))
	assert.Nil(t, r.Definition)
}

func TestLookup_Pronounce(t *testing.T) {
	defs := newDefinitions()
	agg := lookup.NewAggregator(defs, &testutil.MockSynonymSource{}, &testutil.MockTranslator{}, nil, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModePronounce, "ubiquitous")
	require.NoError(t, err)
	assert.Equal(t, "", lookup.Format(lookup.ModePronounce, r))
	assert.Equal(t, []string{"PRONOUNCE ubiquitous"}, defs.Calls)

	defs.PronounceErr = lookup.NewSourceError("definition", lookup.MsgPronunciationNotFound, nil)
	_, err = agg.Lookup(context.Background(), lookup.ModePronounce, "ubiquitous")
	require.Error(t, err)
	assert.Equal(t, "Pronunciation not found", err.Error())
}

func TestLookup_Thesaurus(t *testing.T) {
	syns := &testutil.MockSynonymSource{Items: []string{"omnipresent", "pervasive", "universal"}}
	agg := lookup.NewAggregator(newDefinitions(), syns, &testutil.MockTranslator{}, nil, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModeThesaurus, "ubiquitous")
	require.NoError(t, err)
	assert.Equal(t, []string{"omnipresent", "pervasive", "universal"}, r.Synonyms)
	assert.Equal(t, "synonyms: omnipresent, pervasive, universal", lookup.Format(lookup.ModeThesaurus, r))
}

func TestLookup_Translations(t *testing.T) {
	tests := []struct {
		mode  lookup.Mode
		label string
		want  string
	}{
		{lookup.ModeFrench, "fr", "[fr] omniprésent"},
		{lookup.ModeGerman, "de", "[de] allgegenwärtig"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			trans := &testutil.MockTranslator{Translations: map[string]string{
				"fr": "omniprésent",
				"de": "allgegenwärtig",
			}}
			agg := lookup.NewAggregator(newDefinitions(), &testutil.MockSynonymSource{}, trans, nil, nil)

			r, err := agg.Lookup(context.Background(), tt.mode, "ubiquitous")
			require.NoError(t, err)
			assert.Equal(t, tt.want, lookup.Format(tt.mode, r))
			assert.Equal(t, []string{"TRANSLATE ubiquitous (" + tt.label + ")"}, trans.Calls)
		})
	}
}

func TestLookup_TranslationFailure(t *testing.T) {
	trans := &testutil.MockTranslator{Errors: map[string]error{
		"fr": lookup.NewTranslationError(lookup.French, errors.New("result flag was \"error\"")),
	}}
	agg := lookup.NewAggregator(newDefinitions(), &testutil.MockSynonymSource{}, trans, nil, nil)

	_, err := agg.Lookup(context.Background(), lookup.ModeFrench, "ubiquitous")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lookup.ErrTranslationUnavailable))
	assert.Equal(t, "Unable to translate", err.Error())
}

func TestLookup_All(t *testing.T) {
	defs := newDefinitions()
	syns := &testutil.MockSynonymSource{Items: []string{"omnipresent", "pervasive"}}
	trans := &testutil.MockTranslator{Translations: map[string]string{
		"fr": "omniprésent",
		"de": "allgegenwärtig",
	}}
	agg := lookup.NewAggregator(defs, syns, trans, nil, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModeAll, "ubiquitous")
	require.NoError(t, err)

	want := "ubiquitous [juːˈbɪkwɪtəs]: seeming to be everywhere\n\n" +
		"Mobile phones are ubiquitous these days.\n\n" +
		"synonyms: omnipresent, pervasive\n\n" +
		"[fr] omniprésent\n[de] allgegenwärtig"
	assert.Equal(t, want, lookup.Format(lookup.ModeAll, r))

	assert.Equal(t, []string{"DEFINE ubiquitous"}, defs.Calls)
	assert.Equal(t, []string{"SYNONYMS ubiquitous"}, syns.Calls)
	assert.Equal(t, []string{"TRANSLATE ubiquitous (fr)", "TRANSLATE ubiquitous (de)"}, trans.Calls)
}

func TestLookup_AllAbortsOnFirstFailure(t *testing.T) {
	defs := newDefinitions()
	syns := &testutil.MockSynonymSource{
		Err: lookup.NewSourceError("thesaurus", lookup.MsgSynonymsNotFound, errors.New("status 503")),
	}
	trans := &testutil.MockTranslator{}
	agg := lookup.NewAggregator(defs, syns, trans, nil, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModeAll, "ubiquitous")
	require.Error(t, err)
	assert.Nil(t, r, "no partial report on failure")
	assert.Equal(t, "Synonyms not found", err.Error())
	assert.True(t, errors.Is(err, lookup.ErrSourceUnavailable))

	// Sources after the failing one are never called.
	assert.Empty(t, trans.Calls)
}

func TestLookup_AllCustomSources(t *testing.T) {
	defs := newDefinitions()
	syns := &testutil.MockSynonymSource{}
	trans := &testutil.MockTranslator{Translations: map[string]string{"de": "allgegenwärtig"}}
	agg := lookup.NewAggregator(defs, syns, trans, []lookup.Source{lookup.SourceGerman}, nil)

	r, err := agg.Lookup(context.Background(), lookup.ModeAll, "ubiquitous")
	require.NoError(t, err)
	assert.Equal(t, "[de] allgegenwärtig", lookup.Format(lookup.ModeAll, r))
	assert.Empty(t, defs.Calls)
	assert.Empty(t, syns.Calls)
}

func TestLookup_TrimsPhrase(t *testing.T) {
	defs := newDefinitions()
	agg := lookup.NewAggregator(defs, &testutil.MockSynonymSource{}, &testutil.MockTranslator{}, nil, nil)

	_, err := agg.Lookup(context.Background(), lookup.ModeDefinition, "  ubiquitous ")
	require.NoError(t, err)
	assert.Equal(t, []string{"DEFINE ubiquitous"}, defs.Calls)
}
