package registry

// Storages is the catalog of storage back-end types. Categories split the
// console's storage page into "Cloud" and "Local Database" sections.
var Storages = NewRegistry()

func init() {
	for i, desc := range storageCatalog {
		desc.SortOrder = i
		Storages.MustRegister(desc)
	}
}

var storageCatalog = []*Descriptor{
	{
		Tag:         "postgresql",
		Label:       "PostgreSQL",
		Icon:        "postgresql",
		Category:    "Local Database",
		Description: "Store data in a PostgreSQL database with full ACID compliance",
		Fields: []FieldSpec{
			{Name: "host", Label: "Host", Kind: KindText, Placeholder: "localhost", Required: true, Description: "PostgreSQL server hostname or IP address"},
			{Name: "port", Label: "Port", Kind: KindNumber, Placeholder: "5432", Required: true, Min: bound(1), Max: bound(65535)},
			{Name: "database", Label: "Database Name", Kind: KindText, Placeholder: "quill_data", Required: true},
			{Name: "user", Label: "Username", Kind: KindText, Placeholder: "postgres", Required: true},
			{Name: "password", Label: "Password", Kind: KindPassword, Required: true},
		},
	},
	{
		Tag:         "mssql",
		Label:       "Microsoft SQL Server",
		Icon:        "mssql",
		Category:    "Local Database",
		Description: "Store data in Microsoft SQL Server",
		Fields: []FieldSpec{
			{Name: "host", Label: "Host", Kind: KindText, Placeholder: "localhost", Required: true},
			{Name: "port", Label: "Port", Kind: KindNumber, Placeholder: "1433", Required: true, Min: bound(1), Max: bound(65535)},
			{Name: "database", Label: "Database Name", Kind: KindText, Placeholder: "QuillData", Required: true},
			{Name: "user", Label: "Username", Kind: KindText, Placeholder: "sa", Required: true},
			{Name: "password", Label: "Password", Kind: KindPassword, Required: true},
		},
	},
	{
		Tag:         "aws_s3",
		Label:       "Amazon S3",
		Icon:        "aws",
		Category:    "Cloud",
		Description: "Store data in Amazon S3 buckets",
		Fields: []FieldSpec{
			{Name: "bucketName", Label: "Bucket Name", Kind: KindText, Placeholder: "my-quill-data-bucket", Required: true},
			{Name: "region", Label: "AWS Region", Kind: KindSelect, Required: true, Options: []Option{
				{Value: "us-east-1", Label: "US East (N. Virginia)"},
				{Value: "us-east-2", Label: "US East (Ohio)"},
				{Value: "us-west-1", Label: "US West (N. California)"},
				{Value: "us-west-2", Label: "US West (Oregon)"},
				{Value: "eu-west-1", Label: "Europe (Ireland)"},
				{Value: "eu-central-1", Label: "Europe (Frankfurt)"},
			}},
			{Name: "accessKeyId", Label: "Access Key ID", Kind: KindText, Required: true},
			{Name: "secretAccessKey", Label: "Secret Access Key", Kind: KindPassword, Required: true},
		},
	},
	{
		Tag:         "google_cloud_storage",
		Label:       "Google Cloud Storage",
		Icon:        "gcp",
		Category:    "Cloud",
		Description: "Store data in Google Cloud Storage buckets",
		Fields: []FieldSpec{
			{Name: "bucketName", Label: "Bucket Name", Kind: KindText, Placeholder: "my-quill-data-bucket", Required: true},
			{Name: "projectId", Label: "Project ID", Kind: KindText, Placeholder: "my-gcp-project", Required: true},
			{Name: "serviceAccountKey", Label: "Service Account Key", Kind: KindTextarea, Required: true, Description: "Service account private key (JSON format)"},
		},
	},
	{
		Tag:         "azure_blob_storage",
		Label:       "Azure Blob Storage",
		Icon:        "azure",
		Category:    "Cloud",
		Description: "Store data in Microsoft Azure Blob Storage",
		Fields: []FieldSpec{
			{Name: "containerName", Label: "Container Name", Kind: KindText, Placeholder: "quill-data", Required: true},
			{Name: "connectionString", Label: "Connection String", Kind: KindPassword, Required: true},
		},
	},
	{
		Tag:         "oracle_cloud",
		Label:       "Oracle Cloud Storage",
		Icon:        "oracle",
		Category:    "Cloud",
		Description: "Store data in Oracle Cloud Infrastructure Object Storage",
		Fields: []FieldSpec{
			{Name: "bucketName", Label: "Bucket Name", Kind: KindText, Placeholder: "quill-data-bucket", Required: true},
			{Name: "namespace", Label: "Namespace", Kind: KindText, Required: true},
			{Name: "region", Label: "Region", Kind: KindText, Placeholder: "us-ashburn-1", Required: true},
			{Name: "tenancyId", Label: "Tenancy OCID", Kind: KindPassword},
			{Name: "userId", Label: "User OCID", Kind: KindPassword},
			{Name: "fingerprint", Label: "Fingerprint", Kind: KindPassword},
			{Name: "privateKey", Label: "Private Key (PEM)", Kind: KindTextarea},
		},
	},
	{
		Tag:         "local",
		Label:       "Local File System",
		Icon:        "hard-drive",
		Category:    "Local Database",
		Description: "Store data files locally on the server file system",
		Fields: []FieldSpec{
			{Name: "path", Label: "Storage Path", Kind: KindText, Placeholder: "/var/lib/quill/data", Required: true},
			{Name: "maxFileSize", Label: "Max File Size (MB)", Kind: KindNumber, Placeholder: "100", Min: bound(1), Max: bound(10240)},
		},
	},
}
