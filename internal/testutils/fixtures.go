package testutils

// WorksJSON lists four works: two photographs and two paintings, with a
// fixed price, a null price and a zero price among them.
const WorksJSON = `{
  "works": [
    {"id": 1, "filename": "sea.jpg", "title": "Sea", "category": "photography", "description": "Morning tide", "date": "2024-05", "price": 1500},
    {"id": 2, "filename": "field.jpg", "title": "Field", "category": "painting", "description": "", "date": "2024-06", "price": null},
    {"id": 3, "filename": "city.jpg", "title": "City", "category": "photography", "description": "", "date": "2024-07", "price": 0},
    {"id": 4, "filename": "lake.jpg", "title": "Lake", "category": "painting", "description": "Still water", "date": "2024-08", "price": 3200}
  ]
}`

// ProfileJSON is a complete profile with working EmailJS credentials.
const ProfileJSON = `{
  "name": "Lin Qiu",
  "title": "Landscape photographer",
  "description": "Loves **light**.<script>alert(1)</script>",
  "email": "lin@example.com",
  "phone": "+86 138-0013-8000",
  "website": "lin.example.com",
  "social": {
    "weibo": {"enabled": true, "url": "https://weibo.com/lin"},
    "wechat": {"enabled": true, "qrcode": "/images/wechat.png"},
    "qq": {"enabled": false, "qrcode": "/images/qq.png"}
  },
  "emailjs": {"publicKey": "pk", "serviceId": "svc", "adminTemplateId": "tpl"}
}`

// SiteFiles places works.json and profile.json under data/.
func SiteFiles() map[string]string {
	return map[string]string{
		"data/works.json":   WorksJSON,
		"data/profile.json": ProfileJSON,
	}
}
