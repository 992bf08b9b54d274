package dbmodels

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestCompletionScore(t *testing.T) {
	t.Run(`пустой профиль`, func(t *testing.T) {
		profile := CandidateProfile{}
		score, isComplete := profile.CompletionScore()
		require.Equal(t, 0, score)
		require.Equal(t, false, isComplete)
	})

	t.Run(`полностью заполненный профиль`, func(t *testing.T) {
		profile := CandidateProfile{
			Skills:          pq.StringArray{"go", "sql"},
			Experience:      5,
			Education:       "МГУ",
			Location:        "Москва",
			Summary:         "Опытный разработчик",
			LinkedinURL:     "https://linkedin.com/in/dev",
			GithubURL:       "https://github.com/dev",
			PortfolioURL:    "https://dev.example.com",
			CurrentJobTitle: "Senior Go Developer",
			ResumeID:        "resume-file-id",
		}
		score, isComplete := profile.CompletionScore()
		require.Equal(t, 100, score)
		require.Equal(t, true, isComplete)
	})

	t.Run(`профиль на 80 еще не полный`, func(t *testing.T) {
		// без резюме (20) теряется ровно порог полноты
		profile := CandidateProfile{
			Skills:          pq.StringArray{"go"},
			Experience:      3,
			Education:       "СПбГУ",
			Location:        "Санкт-Петербург",
			Summary:         "Разработчик",
			LinkedinURL:     "https://linkedin.com/in/dev",
			GithubURL:       "https://github.com/dev",
			PortfolioURL:    "https://dev.example.com",
			CurrentJobTitle: "Go Developer",
		}
		score, isComplete := profile.CompletionScore()
		require.Equal(t, 80, score)
		require.Equal(t, false, isComplete)
	})

	t.Run(`профиль от 90 считается полным`, func(t *testing.T) {
		// без портфолио и linkedin (по 5) полнота сохраняется
		profile := CandidateProfile{
			Skills:          pq.StringArray{"go"},
			Experience:      3,
			Education:       "СПбГУ",
			Location:        "Санкт-Петербург",
			Summary:         "Разработчик",
			GithubURL:       "https://github.com/dev",
			CurrentJobTitle: "Go Developer",
			ResumeID:        "resume-file-id",
		}
		score, isComplete := profile.CompletionScore()
		require.Equal(t, 90, score)
		require.Equal(t, true, isComplete)
	})

	t.Run(`нулевой опыт не засчитывается`, func(t *testing.T) {
		profile := CandidateProfile{Experience: 0, Summary: "Стажер"}
		score, _ := profile.CompletionScore()
		require.Equal(t, 15, score)
	})
}
