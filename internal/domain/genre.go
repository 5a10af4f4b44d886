package domain

// Genre identifies one of the fixed recommendation categories.
type Genre string

const (
	GenreAction  Genre = "action"
	GenreComedy  Genre = "comedy"
	GenreDrama   Genre = "drama"
	GenreSciFi   Genre = "scifi"
	GenreRomance Genre = "romance"
	GenreFantasy Genre = "fantasy"
)

// DefaultReason is used for a genre that has no reason template of its own.
const DefaultReason = "당신의 답변에서 이 장르의 선호도가 높게 나타났어요."

// GenreInfo is the static configuration of a genre.
type GenreInfo struct {
	Genre       Genre
	DisplayName string
	CatalogID   int // TMDB genre id
	Reason      string
}

// genreTable is ordered; the order is the scoring tie-break.
var genreTable = []GenreInfo{
	{Genre: GenreAction, DisplayName: "액션", CatalogID: 28, Reason: "긴장감 넘치는 전개와 속도감 있는 장면을 좋아하는 성향이 보여요."},
	{Genre: GenreComedy, DisplayName: "코미디", CatalogID: 35, Reason: "웃음과 여유를 중요하게 생각하는 답변이 많았어요."},
	{Genre: GenreDrama, DisplayName: "드라마", CatalogID: 18, Reason: "감정선과 이야기의 깊이를 중시하는 선택이 돋보였어요."},
	{Genre: GenreSciFi, DisplayName: "SF", CatalogID: 878, Reason: "새로운 세계와 미래에 대한 호기심이 강하게 드러났어요."},
	{Genre: GenreRomance, DisplayName: "로맨스", CatalogID: 10749, Reason: "따뜻한 감정과 설렘을 원하는 답변이 많았어요."},
	{Genre: GenreFantasy, DisplayName: "판타지", CatalogID: 14, Reason: "현실을 넘어서는 상상력을 즐기는 성향이 느껴져요."},
}

var genreIndex = func() map[Genre]GenreInfo {
	idx := make(map[Genre]GenreInfo, len(genreTable))
	for _, g := range genreTable {
		idx[g.Genre] = g
	}
	return idx
}()

// Genres returns the genre table in declaration order.
func Genres() []GenreInfo {
	out := make([]GenreInfo, len(genreTable))
	copy(out, genreTable)
	return out
}

// LookupGenre returns the configuration of g.
func LookupGenre(g Genre) (GenreInfo, bool) {
	info, ok := genreIndex[g]
	return info, ok
}

// ReasonTemplate returns the genre's reason sentence, or DefaultReason.
func (g GenreInfo) ReasonTemplate() string {
	if g.Reason == "" {
		return DefaultReason
	}
	return g.Reason
}
