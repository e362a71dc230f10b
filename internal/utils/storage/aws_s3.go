package storage

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/internal/utils"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	maxImageSize   = 10 << 20
	maxImagePixels = 40_000_000
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, key string, body []byte, contentType string) (string, error)
		UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (domain.RecipeImage, error)
	}

	objectPutter interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	}

	awsS3 struct {
		client objectPutter
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

func (s *awsS3) UploadFile(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.objectURL(key), nil
}

// UploadImage stores the original upload and a tiny blurred JPEG placeholder next to it.
func (s *awsS3) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (domain.RecipeImage, error) {
	if file.Size > maxImageSize {
		return domain.RecipeImage{}, domain.ErrInvalidImage
	}

	src, err := file.Open()
	if err != nil {
		return domain.RecipeImage{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
	if err != nil {
		return domain.RecipeImage{}, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return domain.RecipeImage{}, domain.ErrInvalidImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.RecipeImage{}, domain.ErrInvalidImage
	}

	placeholder, err := BlurPlaceholder(img, PlaceholderWidth)
	if err != nil {
		return domain.RecipeImage{}, err
	}

	name := uuid.New().String()
	defaultURL, err := s.UploadFile(ctx, path.Join(folder, name+"."+format), data, "image/"+format)
	if err != nil {
		return domain.RecipeImage{}, err
	}
	blurURL, err := s.UploadFile(ctx, path.Join(folder, name+"-blur.jpeg"), placeholder, "image/jpeg")
	if err != nil {
		log.Warnw("blur placeholder upload failed", "key", name, "error", err)
		return domain.RecipeImage{DefaultURL: defaultURL}, nil
	}

	return domain.RecipeImage{DefaultURL: defaultURL, BlurURL: blurURL}, nil
}

func (s *awsS3) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, strings.TrimPrefix(key, "/"))
}
