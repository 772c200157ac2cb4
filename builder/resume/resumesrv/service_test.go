package resumesrv

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/builder/template"
	"github.com/smartresume/smartresume/internal/resumeparser"
	"github.com/smartresume/smartresume/pkg/errx"
	"github.com/smartresume/smartresume/pkg/fsx/fsxmem"
	"github.com/smartresume/smartresume/pkg/kernel"
)

const sampleResumeText = `Jane Doe
jane.doe@example.com
+91 9876543210
Bengaluru, India
SUMMARY
Seasoned backend engineer with eight years of shipping production systems.
SKILLS
Python, SQL, Docker
EXPERIENCE
Senior Software Engineer at Initech from 2019 to 2024, Bengaluru office.
EDUCATION
B.Tech in Computer Science, graduated in 2015 with honors.
`

func newTestService(t *testing.T) (*Service, *memResumeRepo, *memJobRepo, *memQueue, *fsxmem.MemFileSystem) {
	t.Helper()
	repo := newMemResumeRepo()
	jobRepo := newMemJobRepo()
	queue := newMemQueue()
	fs := fsxmem.New()
	svc := New(repo, jobRepo, queue, fs, resumeparser.NewExtractor(nil))
	return svc, repo, jobRepo, queue, fs
}

func TestCreateResumeDefaultsTemplate(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	rec, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:   kernel.NewUserID("u1"),
		Fullname: "Jane Doe",
		Email:    "jane.doe@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, template.DefaultName, rec.TemplateName)
	assert.False(t, rec.ID.IsEmpty())
}

func TestCreateResumeRejectsUnknownTemplate(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:       kernel.NewUserID("u1"),
		TemplateName: "template99",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, resume.CodeUnknownTemplate, e.Code)
}

func TestCreateResumeNormalizesAndScores(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	rec, err := svc.CreateResume(context.Background(), resume.CreateResumeRequest{
		UserID:     kernel.NewUserID("u1"),
		Fullname:   "Jane Doe",
		Email:      "jane.doe@example.com",
		Phone:      "+91 9876543210",
		Skills:     "Python, python, SQL",
		Experience: "• Built services\n- Led a team",
		DOB:        "02/01/1995",
	})
	require.NoError(t, err)

	assert.Equal(t, "Python, SQL", rec.Skills)
	assert.Equal(t, "- Built services\n- Led a team", rec.Experience)
	assert.Equal(t, "1995-01-02", rec.DOB)
	assert.Greater(t, rec.ATSComplianceScore, 0)
	assert.NotEmpty(t, rec.ATSRecommendations)
}

func TestUpdateResumeLeavesNilFieldsUnchanged(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateResume(ctx, resume.CreateResumeRequest{
		UserID:   kernel.NewUserID("u1"),
		Fullname: "Jane Doe",
		Summary:  "Backend engineer.",
	})
	require.NoError(t, err)

	newSkills := "Go, Kubernetes"
	updated, err := svc.UpdateResume(ctx, rec.ID, resume.UpdateResumeRequest{
		Skills: &newSkills,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", updated.Fullname)
	assert.Equal(t, "Backend engineer.", updated.Summary)
	assert.Equal(t, "Go, Kubernetes", updated.Skills)
}

func TestUpdateResumeNormalizesSubmittedFields(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateResume(ctx, resume.CreateResumeRequest{
		UserID: kernel.NewUserID("u1"),
	})
	require.NoError(t, err)

	dob := "15/08/1990"
	langs := "english, hindi, english"
	edu := "• B.Tech in CS\n• 2015"
	updated, err := svc.UpdateResume(ctx, rec.ID, resume.UpdateResumeRequest{
		DOB:       &dob,
		Languages: &langs,
		Education: &edu,
	})
	require.NoError(t, err)

	assert.Equal(t, "1990-08-15", updated.DOB)
	assert.Equal(t, "English, Hindi", updated.Languages)
	assert.Equal(t, "- B.Tech in CS\n- 2015", updated.Education)
}

func TestUpdateResumeRejectsUnknownTemplate(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateResume(ctx, resume.CreateResumeRequest{
		UserID: kernel.NewUserID("u1"),
	})
	require.NoError(t, err)

	bad := "not-a-template"
	_, err = svc.UpdateResume(ctx, rec.ID, resume.UpdateResumeRequest{
		TemplateName: &bad,
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, resume.CodeUnknownTemplate, e.Code)
}

func TestImportFromFile(t *testing.T) {
	svc, repo, _, _, fs := newTestService(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, "resumes/u1/jane.txt", []byte(sampleResumeText)))

	rec, err := svc.ImportFromFile(ctx, resume.ImportResumeRequest{
		UserID:   kernel.NewUserID("u1"),
		FilePath: "resumes/u1/jane.txt",
		FileName: "jane.txt",
		FileType: "txt",
		Template: "no-such-template",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", rec.Fullname)
	assert.Equal(t, "jane.doe@example.com", rec.Email)
	assert.Equal(t, "+91 9876543210", rec.Phone)
	assert.Equal(t, "Bengaluru, India", rec.Location)
	assert.Contains(t, rec.Skills, "Python")
	assert.True(t, strings.HasPrefix(rec.Experience, "- "))

	// Unknown template on import falls back instead of failing
	assert.Equal(t, template.DefaultName, rec.TemplateName)
	assert.Greater(t, rec.ATSComplianceScore, 0)

	stored, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Fullname, stored.Fullname)
}

func TestImportFromFileMissingFile(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, err := svc.ImportFromFile(context.Background(), resume.ImportResumeRequest{
		UserID:   kernel.NewUserID("u1"),
		FilePath: "resumes/u1/missing.txt",
		FileType: "txt",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, resume.CodeFileReadFailed, e.Code)
}

func TestImportFromFileUnsupportedType(t *testing.T) {
	svc, _, _, _, fs := newTestService(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, "resumes/u1/jane.odt", []byte("data")))

	_, err := svc.ImportFromFile(ctx, resume.ImportResumeRequest{
		UserID:   kernel.NewUserID("u1"),
		FilePath: "resumes/u1/jane.odt",
		FileType: "odt",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, resume.CodeExtractionFailed, e.Code)
}

func TestScoreResume(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateResume(ctx, resume.CreateResumeRequest{
		UserID:   kernel.NewUserID("u1"),
		Fullname: "Jane Doe",
		Email:    "jane.doe@example.com",
	})
	require.NoError(t, err)

	response, err := svc.ScoreResume(ctx, rec.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, response.ResumeID)
	assert.Equal(t, rec.ATSComplianceScore, response.Report.Score)
}

func TestScoreResumeWithKeywords(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateResume(ctx, resume.CreateResumeRequest{
		UserID: kernel.NewUserID("u1"),
		Skills: "Python, SQL",
	})
	require.NoError(t, err)

	with, err := svc.ScoreResume(ctx, rec.ID, []string{"python", "terraform"})
	require.NoError(t, err)
	without, err := svc.ScoreResume(ctx, rec.ID, nil)
	require.NoError(t, err)

	// Only the absent keyword costs points
	assert.Equal(t, without.Report.Score-2, with.Report.Score)
}

func TestScoreUploadDoesNotPersist(t *testing.T) {
	svc, repo, _, _, fs := newTestService(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, "tmp/upload.txt", []byte(sampleResumeText)))

	response, err := svc.ScoreUpload(ctx, "tmp/upload.txt", "txt", nil)
	require.NoError(t, err)

	assert.Greater(t, response.Report.Score, 0)
	assert.True(t, response.ResumeID.IsEmpty())

	count, err := repo.CountByUserID(ctx, kernel.NewUserID("u1"))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteResume(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateResume(ctx, resume.CreateResumeRequest{
		UserID: kernel.NewUserID("u1"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResume(ctx, rec.ID))

	_, err = svc.GetResume(ctx, rec.ID)
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, resume.CodeResumeNotFound, e.Code)
}

func TestListResumes(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()
	userID := kernel.NewUserID("u1")

	for i := 0; i < 3; i++ {
		_, err := svc.CreateResume(ctx, resume.CreateResumeRequest{UserID: userID})
		require.NoError(t, err)
	}
	_, err := svc.CreateResume(ctx, resume.CreateResumeRequest{UserID: kernel.NewUserID("u2")})
	require.NoError(t, err)

	page, err := svc.ListResumes(ctx, resume.ListResumesRequest{
		UserID:     userID,
		Pagination: kernel.PaginationOptions{Page: 1, PageSize: 10},
	})
	require.NoError(t, err)

	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Page.Total)
}
