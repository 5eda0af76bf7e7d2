package format

// Labels holds the user-visible strings produced by the formatting helpers
// and the page templates.
type Labels struct {
	PriceOnRequest string
	Photography    string
	Painting       string
	All            string
	UnknownBrowser string
	UnknownOS      string
	UnknownIP      string
	ToastSuccess   string
	ToastError     string
	NoWorksYet     string
	NoWorks        string
	NoDescription  string

	MailerUnavailable string
	MailNotConfigured string
	InvalidForm       string
	SendFailed        string
	SentTo            string // takes the owner's email
	Sending           string
	MailDisabled      string
	ScanQRCode        string // takes the platform name
	QRCodeTitle       string // takes the platform name
}

var englishLabels = Labels{
	PriceOnRequest: "Price on request",
	Photography:    "Photography",
	Painting:       "Painting",
	All:            "All",
	UnknownBrowser: "Unknown browser",
	UnknownOS:      "Unknown OS",
	UnknownIP:      "Unknown IP",
	ToastSuccess:   "Success",
	ToastError:     "Error",
	NoWorksYet:     "No works yet. Run the preprocess command first.",
	NoWorks:        "No works",
	NoDescription:  "No description",

	MailerUnavailable: "The email service is not loaded. Please check your network connection.",
	MailNotConfigured: "Please configure the EmailJS parameters in data/profile.json.",
	InvalidForm:       "Please fill in every field with a valid value.",
	SendFailed:        "Sending failed. Please try again later or email us directly.",
	SentTo:            "Your message has been sent. We will get back to you at %s soon!",
	Sending:           "Sending...",
	MailDisabled:      "Online messages are not configured yet. Please reach out by email.",
	ScanQRCode:        "Scan the QR code above with %s",
	QRCodeTitle:       "Add me on %s",
}

var chineseLabels = Labels{
	PriceOnRequest: "价格面议",
	Photography:    "摄影",
	Painting:       "绘画",
	All:            "全部",
	UnknownBrowser: "未知浏览器",
	UnknownOS:      "未知操作系统",
	UnknownIP:      "未知IP",
	ToastSuccess:   "成功",
	ToastError:     "错误",
	NoWorksYet:     "暂无作品，请先运行预处理脚本",
	NoWorks:        "暂无作品",
	NoDescription:  "暂无描述",

	MailerUnavailable: "EmailJS SDK 未加载，请检查网络连接",
	MailNotConfigured: "请在 data/profile.json 中配置 EmailJS 参数",
	InvalidForm:       "请完整填写表单",
	SendFailed:        "发送失败，请稍后重试或直接发送邮件联系我们",
	SentTo:            "留言已发送，我们会尽快通过 %s 联系您！",
	Sending:           "发送中...",
	MailDisabled:      "在线留言尚未配置，请直接发送邮件联系",
	ScanQRCode:        "请使用%s扫描上方二维码",
	QRCodeTitle:       "扫码添加%s",
}

// platformNames maps social platform keys to display names per language.
var platformNames = map[string][2]string{
	"wechat":    {"WeChat", "微信"},
	"qq":        {"QQ", "QQ"},
	"weibo":     {"Weibo", "微博"},
	"instagram": {"Instagram", "Instagram"},
	"behance":   {"Behance", "Behance"},
}
