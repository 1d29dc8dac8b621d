package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/verity-data/fixgen/internal/sink"
)

// ML pipeline: users, user activity, model metadata and churn predictions.
// Activities reference the user pool; predictions reference both the user
// and model pools.

var (
	userRegions       = []string{"US", "EU", "APAC", "LATAM"}
	userEmailDomains  = []string{"gmail.com", "yahoo.com", "outlook.com", "verity.ai"}
	subscriptionTiers = []string{"free", "basic", "premium", "enterprise"}
	activityTypes     = []string{"login", "view_dashboard", "export_report", "api_call", "update_profile"}
	modelAlgorithms   = []string{"XGBoost", "RandomForest", "LogisticRegression", "LightGBM"}
)

var (
	userHeader = []string{
		"user_id", "email", "name", "signup_date", "region", "subscription_tier",
	}
	activityHeader = []string{
		"activity_id", "user_id", "activity_type", "timestamp", "duration_sec",
	}
	modelHeader = []string{
		"model_id", "version", "created_by", "algorithm", "hyperparameters", "created_at",
	}
	predictionHeader = []string{
		"prediction_id", "model_id", "user_id", "churn_probability", "prediction_date",
	}
)

// Users generates n users with zero-based zero-padded ids and returns the
// user id pool for activities and predictions.
func Users(r *rand.Rand, n int) (sink.Table, Pool) {
	signupStart := date(2023, time.January, 1)
	signupEnd := date(2024, time.January, 1)

	rows := make([][]string, 0, n)
	ids := make(Pool, 0, n)

	for i := 0; i < n; i++ {
		userID := fmt.Sprintf("u_%05d", i)
		rows = append(rows, []string{
			userID,
			fmt.Sprintf("user_%d@%s", i, pick(r, userEmailDomains)),
			fmt.Sprintf("User_%d", i),
			sink.FormatDate(randTime(r, signupStart, signupEnd)),
			pick(r, userRegions),
			pick(r, subscriptionTiers),
		})
		ids = append(ids, userID)
	}

	return sink.Table{
		Name:   "users",
		Path:   "users.csv",
		Header: userHeader,
		Rows:   rows,
	}, ids
}

// Activities generates n activity rows, each referencing a user sampled
// from the pool. Durations are bounded to [1, 3600] seconds.
func Activities(r *rand.Rand, n int, users Pool) sink.Table {
	tsStart := date(2023, time.June, 1)
	tsEnd := date(2024, time.February, 1)

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{
			uuid.New().String(),
			users.Sample(r),
			pick(r, activityTypes),
			sink.FormatTimestamp(randTime(r, tsStart, tsEnd)),
			sink.FormatInt(randInt(r, 1, 3600)),
		})
	}

	return sink.Table{
		Name:   "user_activity",
		Path:   "user_activity.csv",
		Header: activityHeader,
		Rows:   rows,
	}
}

// Models generates n model metadata rows and returns the model id pool
// for predictions. Ids and versions derive from the sequence index.
func Models(r *rand.Rand, n int) (sink.Table, Pool) {
	createdStart := date(2023, time.September, 1)
	createdEnd := date(2024, time.February, 1)

	rows := make([][]string, 0, n)
	ids := make(Pool, 0, n)

	for i := 0; i < n; i++ {
		modelID := fmt.Sprintf("churn_model_v%d", i+1)
		params := fmt.Sprintf("{'learning_rate': %s, 'n_estimators': %d}",
			sink.FormatFloat(randFloat(r, 0.01, 0.1), 3),
			randInt(r, 50, 200),
		)
		rows = append(rows, []string{
			modelID,
			fmt.Sprintf("1.%d.0", i),
			fmt.Sprintf("data_scientist_%d@verity.ai", randInt(r, 1, 3)),
			pick(r, modelAlgorithms),
			params,
			sink.FormatTimestamp(randTime(r, createdStart, createdEnd)),
		})
		ids = append(ids, modelID)
	}

	return sink.Table{
		Name:   "model_metadata",
		Path:   "model_metadata.csv",
		Header: modelHeader,
		Rows:   rows,
	}, ids
}

// Predictions generates n churn predictions, each referencing a model and
// a user sampled from their pools. Probabilities land in [0, 1) at four
// decimal places.
func Predictions(r *rand.Rand, n int, models, users Pool) sink.Table {
	dateStart := date(2024, time.January, 1)
	dateEnd := date(2024, time.February, 15)

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{
			uuid.New().String(),
			models.Sample(r),
			users.Sample(r),
			sink.FormatFloat(r.Float64(), 4),
			sink.FormatTimestamp(randTime(r, dateStart, dateEnd)),
		})
	}

	return sink.Table{
		Name:   "predictions",
		Path:   "predictions.csv",
		Header: predictionHeader,
		Rows:   rows,
	}
}
