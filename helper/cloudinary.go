package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"studio_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("cloudinary init failed")
	}
	return cld
}

// UploadItemImage stores an item image under items/ and returns its URL.
func UploadItemImage(cld *cloudinary.Cloudinary, itemId uint, file *multipart.FileHeader) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "items",
		PublicID:     fmt.Sprintf("item_%d_%d", itemId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cannot upload image to Cloudinary: %v", err)
	}
	return result.SecureURL, nil
}
