package domain

// Option is one selectable answer of a question.
type Option struct {
	Label string
	Genre Genre
}

// Question is a quiz prompt with its ordered options. Labels are unique within a question.
type Question struct {
	Prompt  string
	Options []Option
}

// GenreFor returns the genre mapped to label.
func (q Question) GenreFor(label string) (Genre, bool) {
	for _, o := range q.Options {
		if o.Label == label {
			return o.Genre, true
		}
	}
	return "", false
}

// Labels returns the option labels in display order.
func (q Question) Labels() []string {
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	return labels
}

// QuestionBank is the ordered list of quiz questions.
type QuestionBank []Question

var defaultQuestionBank = QuestionBank{
	{
		Prompt: "주말에 가장 하고 싶은 활동은?",
		Options: []Option{
			{Label: "신나는 액티비티를 즐기고 싶다", Genre: GenreAction},
			{Label: "친구들과 유쾌하게 웃고 싶다", Genre: GenreComedy},
			{Label: "혼자서 감성적인 시간을 보내고 싶다", Genre: GenreDrama},
			{Label: "새로운 기술이나 미래 이야기에 끌린다", Genre: GenreSciFi},
		},
	},
	{
		Prompt: "이야기에서 가장 중요한 요소는?",
		Options: []Option{
			{Label: "강렬한 사건과 전개", Genre: GenreAction},
			{Label: "가볍고 즐거운 분위기", Genre: GenreComedy},
			{Label: "인물의 성장과 감정선", Genre: GenreDrama},
			{Label: "로맨틱한 감정", Genre: GenreRomance},
		},
	},
	{
		Prompt: "상상 속 세계에 대한 호기심은?",
		Options: []Option{
			{Label: "미래 기술과 우주가 궁금하다", Genre: GenreSciFi},
			{Label: "마법과 신비한 세계를 좋아한다", Genre: GenreFantasy},
			{Label: "현실적인 이야기가 더 좋다", Genre: GenreDrama},
			{Label: "일상의 소소한 재미가 좋다", Genre: GenreComedy},
		},
	},
	{
		Prompt: "기분 전환이 필요할 때 가장 선호하는 영화 스타일은?",
		Options: []Option{
			{Label: "통쾌한 액션", Genre: GenreAction},
			{Label: "따뜻한 로맨스", Genre: GenreRomance},
			{Label: "마법 같은 판타지", Genre: GenreFantasy},
			{Label: "뭉클한 드라마", Genre: GenreDrama},
		},
	},
	{
		Prompt: "친구에게 영화를 추천한다면?",
		Options: []Option{
			{Label: "긴장감 넘치는 액션", Genre: GenreAction},
			{Label: "웃음이 가득한 코미디", Genre: GenreComedy},
			{Label: "감동적인 드라마", Genre: GenreDrama},
			{Label: "설레는 로맨스", Genre: GenreRomance},
		},
	},
}

// DefaultQuestionBank returns the built-in questions. The bank is shared and must not be modified.
func DefaultQuestionBank() QuestionBank {
	return defaultQuestionBank
}
