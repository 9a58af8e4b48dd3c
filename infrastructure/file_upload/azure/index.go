package azure

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	azblob_sas "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"veriface.io/infrastructure/file_upload/types"
	"veriface.io/infrastructure/logger"
)

type AzureBlobStorageService struct {
	AccountName   string
	ContainerName string
	AccountKey    string

	once   sync.Once
	client *azblob.Client
	err    error
}

func (azservice *AzureBlobStorageService) connect() (*azblob.Client, error) {
	azservice.once.Do(func() {
		credential, err := azblob.NewSharedKeyCredential(azservice.AccountName, azservice.AccountKey)
		if err != nil {
			logger.Error("error creating azblob shared key credential", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			azservice.err = err
			return
		}
		serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", azservice.AccountName)
		azservice.client, azservice.err = azblob.NewClientWithSharedKeyCredential(serviceURL, credential, nil)
	})
	return azservice.client, azservice.err
}

func (azservice *AzureBlobStorageService) UploadFile(ctx context.Context, fileName string, data []byte, contentType string) error {
	client, err := azservice.connect()
	if err != nil {
		return err
	}
	_, err = client.UploadBuffer(ctx, azservice.ContainerName, fileName, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	})
	if err != nil {
		logger.Error("error uploading blob", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "fileName",
			Data: fileName,
		})
		return err
	}
	return nil
}

func (azservice *AzureBlobStorageService) GeneratedSignedURL(fileName string, permission types.SignedURLPermission, ttl time.Duration) (*string, error) {
	if permission.Read == permission.Write {
		return nil, errors.New("permission must be either read or write")
	}
	credential, err := azblob.NewSharedKeyCredential(azservice.AccountName, azservice.AccountKey)
	if err != nil {
		logger.Error("error creating azblob shared key credential", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}

	sasQueryParams, err := azblob_sas.BlobSignatureValues{
		Protocol:      azblob_sas.ProtocolHTTPS,
		StartTime:     time.Now().UTC(),
		ExpiryTime:    time.Now().UTC().Add(ttl),
		Permissions:   (&azblob_sas.BlobPermissions{Read: permission.Read, Write: permission.Write, Delete: permission.Delete}).String(),
		ContainerName: azservice.ContainerName,
		BlobName:      fileName,
	}.SignWithSharedKey(credential)
	if err != nil {
		logger.Error("error signing blob signature values", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	sasURL := fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s?%s",
		azservice.AccountName, azservice.ContainerName, fileName, sasQueryParams.Encode())
	return &sasURL, nil
}

func (azservice *AzureBlobStorageService) DeleteFile(fileName string) error {
	client, err := azservice.connect()
	if err != nil {
		return err
	}
	_, err = client.DeleteBlob(context.TODO(), azservice.ContainerName, fileName, nil)
	if err != nil {
		logger.Error("error deleting blob", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "fileName",
			Data: fileName,
		})
		return err
	}
	return nil
}

func (azservice *AzureBlobStorageService) CheckFileExists(fileName string) (bool, error) {
	client, err := azservice.connect()
	if err != nil {
		return false, err
	}
	blobClient := client.ServiceClient().NewContainerClient(azservice.ContainerName).NewBlobClient(fileName)
	_, err = blobClient.GetProperties(context.TODO(), nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
