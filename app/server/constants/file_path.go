package constants

// 上传文件
const (
	UploadDirPath   = "static/uploads" // 磁盘目录，相对进程工作目录
	UploadURLPrefix = "/static/uploads"
)
