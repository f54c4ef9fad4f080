package enquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() StagePolicy {
	return StagePolicy{
		MaxFiles:     3,
		MaxFileBytes: 5 * 1024 * 1024,
		AcceptedMIME: []string{
			"image/jpeg",
			"image/png",
			"image/webp",
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	}
}

func pdfFile(name string, size int64) StagedFile {
	return StagedFile{Filename: name, MIMEType: "application/pdf", Size: size, Content: []byte("%PDF-1.4")}
}

func TestStageAddPreservesOrder(t *testing.T) {
	stage := NewStage(testPolicy())

	rejections := stage.Add(
		pdfFile("survey.pdf", 1024),
		StagedFile{Filename: "roof.jpg", MIMEType: "image/jpeg", Size: 2048, Content: []byte("jpg")},
		StagedFile{Filename: "garage.png", MIMEType: "image/png", Size: 4096, Content: []byte("png")},
	)

	assert.Empty(t, rejections)
	require.Equal(t, 3, stage.Count())

	files := stage.Files()
	assert.Equal(t, "survey.pdf", files[0].Filename)
	assert.Equal(t, "roof.jpg", files[1].Filename)
	assert.Equal(t, "garage.png", files[2].Filename)
}

func TestStageCapStopsBatchWithoutRejection(t *testing.T) {
	stage := NewStage(testPolicy())
	stage.Add(pdfFile("a.pdf", 1), pdfFile("b.pdf", 1), pdfFile("c.pdf", 1))
	require.True(t, stage.Full())

	// A fourth valid file is a count refusal, not a type/size rejection:
	// the stage stays at three and no message is produced.
	rejections := stage.Add(pdfFile("d.pdf", 1))
	assert.Empty(t, rejections)
	assert.Equal(t, 3, stage.Count())
}

func TestStageRejectsUnacceptedType(t *testing.T) {
	stage := NewStage(testPolicy())
	stage.Add(pdfFile("a.pdf", 1))

	rejections := stage.Add(StagedFile{
		Filename: "site.zip",
		MIMEType: "application/zip",
		Size:     100,
		Content:  []byte("PK"),
	})

	require.Len(t, rejections, 1)
	assert.Equal(t, RejectedType, rejections[0].Reason)
	assert.Contains(t, rejections[0].Message, "site.zip")
	assert.Contains(t, rejections[0].Message, "File type not accepted")
	assert.Equal(t, 1, stage.Count())
}

func TestStageRejectsOversizedFile(t *testing.T) {
	stage := NewStage(testPolicy())

	rejections := stage.Add(pdfFile("huge.pdf", 5*1024*1024+1))

	require.Len(t, rejections, 1)
	assert.Equal(t, RejectedSize, rejections[0].Reason)
	assert.Contains(t, rejections[0].Message, "huge.pdf")
	assert.Contains(t, rejections[0].Message, "File too large")
	assert.Equal(t, 0, stage.Count())

	// Exactly at the limit is accepted.
	rejections = stage.Add(pdfFile("limit.pdf", 5*1024*1024))
	assert.Empty(t, rejections)
	assert.Equal(t, 1, stage.Count())
}

func TestStageBatchPartialSuccess(t *testing.T) {
	stage := NewStage(testPolicy())

	rejections := stage.Add(
		pdfFile("good.pdf", 1),
		StagedFile{Filename: "bad.exe", MIMEType: "application/x-msdownload", Size: 1, Content: []byte("MZ")},
		pdfFile("also-good.pdf", 1),
	)

	require.Len(t, rejections, 1)
	assert.Equal(t, "bad.exe", rejections[0].Filename)

	files := stage.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "good.pdf", files[0].Filename)
	assert.Equal(t, "also-good.pdf", files[1].Filename)
}

func TestStageSniffsMissingMIMEType(t *testing.T) {
	stage := NewStage(testPolicy())

	// PNG magic bytes with no declared type: content sniffing admits it.
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	rejections := stage.Add(StagedFile{Filename: "photo", Size: int64(len(png)), Content: png})
	assert.Empty(t, rejections)
	require.Equal(t, 1, stage.Count())
	assert.Equal(t, "image/png", stage.Files()[0].MIMEType)

	// Plain text with no declared type is sniffed and refused.
	rejections = stage.Add(StagedFile{Filename: "notes", Size: 5, Content: []byte("hello")})
	require.Len(t, rejections, 1)
	assert.Equal(t, RejectedType, rejections[0].Reason)
}

func TestStageRemove(t *testing.T) {
	stage := NewStage(testPolicy())
	stage.Add(pdfFile("a.pdf", 1), pdfFile("b.pdf", 1), pdfFile("c.pdf", 1))

	assert.True(t, stage.Remove(1))

	files := stage.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", files[0].Filename)
	assert.Equal(t, "c.pdf", files[1].Filename)

	assert.False(t, stage.Remove(5))
	assert.False(t, stage.Remove(-1))
	assert.Equal(t, 2, stage.Count())
}
