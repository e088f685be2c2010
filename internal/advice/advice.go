package advice

// 분류 라벨별 대응 안내 문구
// 라벨은 internal/classifier의 ClassNames와 1:1

const Fallback = "Unable to provide advice."

var adviceMap = map[string]string{
	"Tomato_Bacterial_spot":                       "Bacterial spot detected. Remove affected leaves and spray with copper-based bactericide.",
	"Tomato_Early_blight":                         "Early Blight detected. Remove infected leaves and apply copper-based fungicide.",
	"Tomato_Late_blight":                          "Late Blight detected. Use fungicide immediately and avoid overhead watering.",
	"Tomato_Leaf_Mold":                            "Leaf Mold detected. Improve ventilation and avoid moisture on leaves.",
	"Tomato_Septoria_leaf_spot":                   "Septoria Leaf Spot detected. Remove affected leaves and apply protective fungicide.",
	"Tomato_Spider_mites_Two_spotted_spider_mite": "Spider mites detected. Use insecticidal soap or neem oil to control.",
	"Tomato_Target_Spot":                          "Target Spot detected. Remove infected leaves and apply fungicide.",
	"Tomato_Tomato_YellowLeaf_Curl_Virus":         "Yellow Leaf Curl Virus detected. Remove affected plants and control whiteflies.",
	"Tomato_Tomato_mosaic_virus":                  "Mosaic Virus detected. Remove affected plants and disinfect tools.",
	"Tomato_healthy":                              "Your plant is healthy! No action is needed.",
}

// ForLabel은 라벨에 해당하는 안내 문구를 리턴
// 미정의 라벨이어도 요청을 실패시키지 않고 Fallback을 리턴
func ForLabel(label string) string {
	if text, ok := adviceMap[label]; ok {
		return text
	}
	return Fallback
}
