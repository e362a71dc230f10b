package storage

import (
	"Culinary-Alchemy/domain"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putCall struct {
	key         string
	contentType string
	body        []byte
}

type fakePutter struct {
	calls  []putCall
	failOn string
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	key := *params.Key
	f.calls = append(f.calls, putCall{key: key, contentType: *params.ContentType, body: body})
	if f.failOn != "" && strings.Contains(key, f.failOn) {
		return nil, errors.New("access denied")
	}
	return &s3.PutObjectOutput{}, nil
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestBlurPlaceholder(t *testing.T) {
	t.Parallel()

	data, err := BlurPlaceholder(testImage(200, 100), PlaceholderWidth)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, PlaceholderWidth, decoded.Bounds().Dx())
	assert.Equal(t, PlaceholderWidth/2, decoded.Bounds().Dy())

	_, err = BlurPlaceholder(image.NewRGBA(image.Rect(0, 0, 0, 0)), PlaceholderWidth)
	assert.Error(t, err)
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, testImage(64, 64)))

	putter := &fakePutter{}
	store := &awsS3{client: putter, bucket: "recipes-bucket", region: "eu-west-1"}

	res, err := store.UploadImage(context.Background(), fileHeader(t, "cake.png", encoded.Bytes()), "recipes")
	require.NoError(t, err)

	require.Len(t, putter.calls, 2)
	assert.True(t, strings.HasPrefix(putter.calls[0].key, "recipes/"))
	assert.True(t, strings.HasSuffix(putter.calls[0].key, ".png"))
	assert.Equal(t, "image/png", putter.calls[0].contentType)
	assert.Equal(t, encoded.Bytes(), putter.calls[0].body)
	assert.True(t, strings.HasSuffix(putter.calls[1].key, "-blur.jpeg"))
	assert.Equal(t, "image/jpeg", putter.calls[1].contentType)

	assert.Equal(t, "https://recipes-bucket.s3.eu-west-1.amazonaws.com/"+putter.calls[0].key, res.DefaultURL)
	assert.Equal(t, "https://recipes-bucket.s3.eu-west-1.amazonaws.com/"+putter.calls[1].key, res.BlurURL)
}

func TestUploadImageKeepsOriginalWhenPlaceholderFails(t *testing.T) {
	t.Parallel()

	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, testImage(32, 32)))

	putter := &fakePutter{failOn: "-blur"}
	store := &awsS3{client: putter, bucket: "b", region: "r"}

	res, err := store.UploadImage(context.Background(), fileHeader(t, "cake.png", encoded.Bytes()), "recipes")
	require.NoError(t, err)
	assert.NotEmpty(t, res.DefaultURL)
	assert.Empty(t, res.BlurURL)
}

func TestUploadImageRejectsNonImages(t *testing.T) {
	t.Parallel()

	putter := &fakePutter{}
	store := &awsS3{client: putter, bucket: "b", region: "r"}

	_, err := store.UploadImage(context.Background(), fileHeader(t, "notes.txt", []byte("plain text")), "recipes")
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
	assert.Empty(t, putter.calls)
}

// pngHeader returns a PNG signature and IHDR chunk declaring w by h RGBA pixels with no data.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], w)
	binary.BigEndian.PutUint32(ihdr[4:8], h)
	ihdr[8] = 8
	ihdr[9] = 6

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestUploadImageRejectsOversizedDimensions(t *testing.T) {
	t.Parallel()

	putter := &fakePutter{}
	store := &awsS3{client: putter, bucket: "b", region: "r"}

	_, err := store.UploadImage(context.Background(), fileHeader(t, "huge.png", pngHeader(100_000, 100_000)), "recipes")
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
	assert.Empty(t, putter.calls)
}
