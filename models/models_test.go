package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// The persisted wire names are load-bearing: backup files from other
// versions of the tool must keep importing cleanly.
func TestSnapshotWireNames(t *testing.T) {
	snap := NewSnapshot()
	snap.Feed = append(snap.Feed, FeedItem{
		ID: "post-1", Text: "oi", Public: true, Mentions: []string{"Carla"},
		Kind: PostNotice, CreatedAt: "2026-01-01T00:00:00.000Z", AuthorName: "Líder",
		Comments:        []Comment{{AuthorName: "Carla", Text: "amém", Approved: true}},
		ReactionsByUser: map[string]ReactionKind{"aux-1": ReactionHeart},
	})
	snap.Presences = append(snap.Presences, Presence{
		ID: "pre-1", StudentID: "stu-1", DateISO: "2026-01-04",
		RecordedByName: "Carla", RecordedByRole: RoleHelper,
	})
	snap.Registrations = append(snap.Registrations, Registration{
		ID: "reg-1", ChildName: "Davi", GuardianName: "Marcos",
	})

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	doc := string(data)

	for _, key := range []string{
		`"students"`, `"presences"`, `"offerings"`, `"feed"`, `"files"`,
		`"registrations"`, `"settings"`,
		`"accumulatedBalance"`, `"lastMonthClosure"`, `"presenceClosedAt"`, `"allowEditsAfterClosure"`,
		`"texto"`, `"publico"`, `"mencionados"`, `"tipo"`, `"criadoEm"`, `"criadoPorNome"`,
		`"reacoes"`, `"gostei"`, `"coracao"`, `"festa"`, `"comentarios"`, `"usuariosQueReagiram"`,
		`"nome"`, `"aprovado"`,
		`"alunoId"`, `"dataISO"`, `"presente"`, `"registradoPorNome"`, `"papel"`,
		`"nasc"`, `"resp"`, `"tel"`, `"endereco"`, `"telEmerg"`, `"contatoEmerg"`, `"obs"`,
	} {
		require.Contains(t, doc, key)
	}
}

func TestReactionsFloorAtZero(t *testing.T) {
	var r Reactions
	r.Add(ReactionLike, -1)
	require.Equal(t, 0, r.Like)
	r.Add(ReactionLike, 1)
	r.Add(ReactionHeart, 1)
	require.Equal(t, 1, r.Count(ReactionLike))
	require.Equal(t, 1, r.Count(ReactionHeart))
	require.Equal(t, 0, r.Count(ReactionParty))
}

func TestCloneDoesNotAlias(t *testing.T) {
	snap := NewSnapshot()
	snap.Feed = append(snap.Feed, FeedItem{
		ID:              "post-1",
		Mentions:        []string{"Carla"},
		Comments:        []Comment{{AuthorName: "Carla", Text: "oi", Approved: true}},
		ReactionsByUser: map[string]ReactionKind{"aux-1": ReactionHeart},
	})
	clone := snap.Clone()

	clone.Feed[0].Mentions[0] = "changed"
	clone.Feed[0].ReactionsByUser["aux-1"] = ReactionLike
	clone.Feed[0].Comments[0].Text = "changed"

	require.Equal(t, "Carla", snap.Feed[0].Mentions[0])
	require.Equal(t, ReactionHeart, snap.Feed[0].ReactionsByUser["aux-1"])
	require.Equal(t, "oi", snap.Feed[0].Comments[0].Text)
}

func TestNewID(t *testing.T) {
	id := NewID("post")
	require.Regexp(t, regexp.MustCompile(`^post-\d+$`), id)
	require.True(t, strings.HasPrefix(id, "post-"))
}

// Fixed-width timestamps keep lexicographic order chronological.
func TestNowISOFormat(t *testing.T) {
	ts := NowISO()
	require.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`), ts)
	require.Len(t, ts, 24)
}
