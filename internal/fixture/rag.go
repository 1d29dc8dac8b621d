package fixture

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verity-data/fixgen/internal/sink"
)

// RAG volume pipeline: customer profiles, employees, documents with one
// embedding per document. Document authors resolve against the customer
// email pool.

var (
	customerSegments = []string{"STANDARD", "PREMIUM", "VIP", "ENTERPRISE"}
	accountStatuses  = []string{"ACTIVE", "INACTIVE", "SUSPENDED"}
	departments      = []string{"Engineering", "Marketing", "HR", "Sales", "Finance"}
	employeeRoles    = []string{"Junior", "Senior", "Lead", "Manager", "Director"}
)

const (
	// StatusInactive triggers the account_end_date field; every other
	// status leaves it empty.
	StatusInactive = "INACTIVE"

	// InternalAuthor is the sentinel author for documents that have no
	// customer behind them.
	InternalAuthor = "internal@verity.dev"

	// internalAuthorP is the probability that a document has a real
	// customer author rather than the internal sentinel.
	internalAuthorP = 0.5

	embeddingModel = "text-embedding-3-small"
)

var (
	customerHeader = []string{
		"customer_id", "email", "first_name", "last_name", "segment",
		"last_login", "signup_date", "account_status", "account_end_date",
	}
	employeeHeader = []string{
		"employee_id", "name", "department", "role", "hire_date", "salary_band",
	}
	documentHeader = []string{
		"document_id", "content", "source_url", "author_email", "created_at", "updated_at",
	}
	embeddingHeader = []string{
		"embedding_id", "document_id", "embedding_vector", "model_name", "created_at",
	}
)

// Customers generates n customer profiles with 1-based sequential ids and
// returns the email pool for document authorship. Signup falls within a
// year of the epoch; last login is at most 30 days after signup; inactive
// accounts get an end date 5 days after last login.
func Customers(r *rand.Rand, n int) (sink.Table, Pool) {
	epoch := date(2025, time.January, 1)

	rows := make([][]string, 0, n)
	emails := make(Pool, 0, n)

	for i := 1; i <= n; i++ {
		email := fmt.Sprintf("user_%d@example.com", i)
		signup := epoch.AddDate(0, 0, randInt(r, 0, 365))
		lastLogin := signup.AddDate(0, 0, randInt(r, 0, 30))
		status := pick(r, accountStatuses)

		endDate := ""
		if status == StatusInactive {
			endDate = sink.FormatDate(lastLogin.AddDate(0, 0, 5))
		}

		rows = append(rows, []string{
			fmt.Sprintf("CUST_%d", i),
			email,
			fmt.Sprintf("First%d", i),
			fmt.Sprintf("Last%d", i),
			pick(r, customerSegments),
			sink.FormatDateTime(lastLogin),
			sink.FormatDate(signup),
			status,
			endDate,
		})
		emails = append(emails, email)
	}

	return sink.Table{
		Name:   "customers",
		Path:   "customer/profiles.csv",
		Header: customerHeader,
		Rows:   rows,
	}, emails
}

// Employees generates n employee rows. The table stands alone: nothing
// references it and it references nothing.
func Employees(r *rand.Rand, n int) sink.Table {
	epoch := date(2020, time.January, 1)

	rows := make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("EMP_%03d", i),
			fmt.Sprintf("Employee %d", i),
			pick(r, departments),
			pick(r, employeeRoles),
			sink.FormatDate(epoch.AddDate(0, 0, randInt(r, 0, 1500))),
			sink.FormatInt(randInt(r, 1, 10)),
		})
	}

	return sink.Table{
		Name:   "employees",
		Path:   "human_resources/employees.csv",
		Header: employeeHeader,
		Rows:   rows,
	}
}

// Documents generates n documents plus one embedding per document in the
// same iteration, so the 1:1 relationship holds by construction. Half the
// documents get an author sampled from the customer email pool, the rest
// the internal sentinel.
func Documents(r *rand.Rand, n int, authors Pool) (sink.Table, sink.Table) {
	epoch := date(2026, time.January, 1)

	docRows := make([][]string, 0, n)
	embRows := make([][]string, 0, n)

	for i := 1; i <= n; i++ {
		docID := sink.FormatInt(i)
		content := strings.Repeat(fmt.Sprintf(
			"This is the content for document %d. It talks about Verity features and performance. ", i), 5)
		author := WeightedRef(r, internalAuthorP, authors, InternalAuthor)
		created := sink.FormatDateTime(epoch.Add(time.Duration(i) * time.Minute))

		docRows = append(docRows, []string{
			docID,
			content,
			fmt.Sprintf("https://verity.dev/docs/%d", i),
			author,
			created,
			created,
		})

		vector := fmt.Sprintf("[%s, %s, %s]",
			sink.FormatFloat(r.Float64(), 4),
			sink.FormatFloat(r.Float64(), 4),
			sink.FormatFloat(r.Float64(), 4),
		)
		embRows = append(embRows, []string{
			docID,
			docID,
			vector,
			embeddingModel,
			created,
		})
	}

	docs := sink.Table{
		Name:   "documents",
		Path:   "digital/documents.csv",
		Header: documentHeader,
		Rows:   docRows,
	}
	embeddings := sink.Table{
		Name:   "embeddings",
		Path:   "digital/embeddings.csv",
		Header: embeddingHeader,
		Rows:   embRows,
	}
	return docs, embeddings
}
