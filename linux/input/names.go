//go:build linux

package input

// Names maps every EV_KEY/BTN_* constant this package declares to its
// code, keyed by its Go identifier (e.g. "KEY_LEFTSHIFT"). It is the
// snapshot source for github.com/inputcore/remapper/symbols.Capture.
var Names = map[string]uint16{
	"BTN_0": BTN_0,
	"BTN_1": BTN_1,
	"BTN_2": BTN_2,
	"BTN_3": BTN_3,
	"BTN_4": BTN_4,
	"BTN_5": BTN_5,
	"BTN_6": BTN_6,
	"BTN_7": BTN_7,
	"BTN_8": BTN_8,
	"BTN_9": BTN_9,
	"BTN_A": BTN_A,
	"BTN_B": BTN_B,
	"BTN_BACK": BTN_BACK,
	"BTN_BASE": BTN_BASE,
	"BTN_BASE2": BTN_BASE2,
	"BTN_BASE3": BTN_BASE3,
	"BTN_BASE4": BTN_BASE4,
	"BTN_BASE5": BTN_BASE5,
	"BTN_BASE6": BTN_BASE6,
	"BTN_C": BTN_C,
	"BTN_DEAD": BTN_DEAD,
	"BTN_DIGI": BTN_DIGI,
	"BTN_DPAD_DOWN": BTN_DPAD_DOWN,
	"BTN_DPAD_LEFT": BTN_DPAD_LEFT,
	"BTN_DPAD_RIGHT": BTN_DPAD_RIGHT,
	"BTN_DPAD_UP": BTN_DPAD_UP,
	"BTN_EAST": BTN_EAST,
	"BTN_EXTRA": BTN_EXTRA,
	"BTN_FORWARD": BTN_FORWARD,
	"BTN_GAMEPAD": BTN_GAMEPAD,
	"BTN_GEAR_DOWN": BTN_GEAR_DOWN,
	"BTN_GEAR_UP": BTN_GEAR_UP,
	"BTN_JOYSTICK": BTN_JOYSTICK,
	"BTN_LEFT": BTN_LEFT,
	"BTN_MIDDLE": BTN_MIDDLE,
	"BTN_MISC": BTN_MISC,
	"BTN_MODE": BTN_MODE,
	"BTN_MOUSE": BTN_MOUSE,
	"BTN_NORTH": BTN_NORTH,
	"BTN_PINKIE": BTN_PINKIE,
	"BTN_RIGHT": BTN_RIGHT,
	"BTN_SELECT": BTN_SELECT,
	"BTN_SIDE": BTN_SIDE,
	"BTN_SOUTH": BTN_SOUTH,
	"BTN_START": BTN_START,
	"BTN_STYLUS": BTN_STYLUS,
	"BTN_STYLUS2": BTN_STYLUS2,
	"BTN_STYLUS3": BTN_STYLUS3,
	"BTN_TASK": BTN_TASK,
	"BTN_THUMB": BTN_THUMB,
	"BTN_THUMB2": BTN_THUMB2,
	"BTN_THUMBL": BTN_THUMBL,
	"BTN_THUMBR": BTN_THUMBR,
	"BTN_TL": BTN_TL,
	"BTN_TL2": BTN_TL2,
	"BTN_TOOL_AIRBRUSH": BTN_TOOL_AIRBRUSH,
	"BTN_TOOL_BRUSH": BTN_TOOL_BRUSH,
	"BTN_TOOL_DOUBLETAP": BTN_TOOL_DOUBLETAP,
	"BTN_TOOL_FINGER": BTN_TOOL_FINGER,
	"BTN_TOOL_LENS": BTN_TOOL_LENS,
	"BTN_TOOL_MOUSE": BTN_TOOL_MOUSE,
	"BTN_TOOL_PEN": BTN_TOOL_PEN,
	"BTN_TOOL_PENCIL": BTN_TOOL_PENCIL,
	"BTN_TOOL_QUADTAP": BTN_TOOL_QUADTAP,
	"BTN_TOOL_QUINTTAP": BTN_TOOL_QUINTTAP,
	"BTN_TOOL_RUBBER": BTN_TOOL_RUBBER,
	"BTN_TOOL_TRIPLETAP": BTN_TOOL_TRIPLETAP,
	"BTN_TOP": BTN_TOP,
	"BTN_TOP2": BTN_TOP2,
	"BTN_TOUCH": BTN_TOUCH,
	"BTN_TR": BTN_TR,
	"BTN_TR2": BTN_TR2,
	"BTN_TRIGGER": BTN_TRIGGER,
	"BTN_TRIGGER_HAPPY": BTN_TRIGGER_HAPPY,
	"BTN_TRIGGER_HAPPY1": BTN_TRIGGER_HAPPY1,
	"BTN_TRIGGER_HAPPY10": BTN_TRIGGER_HAPPY10,
	"BTN_TRIGGER_HAPPY11": BTN_TRIGGER_HAPPY11,
	"BTN_TRIGGER_HAPPY12": BTN_TRIGGER_HAPPY12,
	"BTN_TRIGGER_HAPPY13": BTN_TRIGGER_HAPPY13,
	"BTN_TRIGGER_HAPPY14": BTN_TRIGGER_HAPPY14,
	"BTN_TRIGGER_HAPPY15": BTN_TRIGGER_HAPPY15,
	"BTN_TRIGGER_HAPPY16": BTN_TRIGGER_HAPPY16,
	"BTN_TRIGGER_HAPPY17": BTN_TRIGGER_HAPPY17,
	"BTN_TRIGGER_HAPPY18": BTN_TRIGGER_HAPPY18,
	"BTN_TRIGGER_HAPPY19": BTN_TRIGGER_HAPPY19,
	"BTN_TRIGGER_HAPPY2": BTN_TRIGGER_HAPPY2,
	"BTN_TRIGGER_HAPPY20": BTN_TRIGGER_HAPPY20,
	"BTN_TRIGGER_HAPPY21": BTN_TRIGGER_HAPPY21,
	"BTN_TRIGGER_HAPPY22": BTN_TRIGGER_HAPPY22,
	"BTN_TRIGGER_HAPPY23": BTN_TRIGGER_HAPPY23,
	"BTN_TRIGGER_HAPPY24": BTN_TRIGGER_HAPPY24,
	"BTN_TRIGGER_HAPPY25": BTN_TRIGGER_HAPPY25,
	"BTN_TRIGGER_HAPPY26": BTN_TRIGGER_HAPPY26,
	"BTN_TRIGGER_HAPPY27": BTN_TRIGGER_HAPPY27,
	"BTN_TRIGGER_HAPPY28": BTN_TRIGGER_HAPPY28,
	"BTN_TRIGGER_HAPPY29": BTN_TRIGGER_HAPPY29,
	"BTN_TRIGGER_HAPPY3": BTN_TRIGGER_HAPPY3,
	"BTN_TRIGGER_HAPPY30": BTN_TRIGGER_HAPPY30,
	"BTN_TRIGGER_HAPPY31": BTN_TRIGGER_HAPPY31,
	"BTN_TRIGGER_HAPPY32": BTN_TRIGGER_HAPPY32,
	"BTN_TRIGGER_HAPPY33": BTN_TRIGGER_HAPPY33,
	"BTN_TRIGGER_HAPPY34": BTN_TRIGGER_HAPPY34,
	"BTN_TRIGGER_HAPPY35": BTN_TRIGGER_HAPPY35,
	"BTN_TRIGGER_HAPPY36": BTN_TRIGGER_HAPPY36,
	"BTN_TRIGGER_HAPPY37": BTN_TRIGGER_HAPPY37,
	"BTN_TRIGGER_HAPPY38": BTN_TRIGGER_HAPPY38,
	"BTN_TRIGGER_HAPPY39": BTN_TRIGGER_HAPPY39,
	"BTN_TRIGGER_HAPPY4": BTN_TRIGGER_HAPPY4,
	"BTN_TRIGGER_HAPPY40": BTN_TRIGGER_HAPPY40,
	"BTN_TRIGGER_HAPPY5": BTN_TRIGGER_HAPPY5,
	"BTN_TRIGGER_HAPPY6": BTN_TRIGGER_HAPPY6,
	"BTN_TRIGGER_HAPPY7": BTN_TRIGGER_HAPPY7,
	"BTN_TRIGGER_HAPPY8": BTN_TRIGGER_HAPPY8,
	"BTN_TRIGGER_HAPPY9": BTN_TRIGGER_HAPPY9,
	"BTN_WEST": BTN_WEST,
	"BTN_WHEEL": BTN_WHEEL,
	"BTN_X": BTN_X,
	"BTN_Y": BTN_Y,
	"BTN_Z": BTN_Z,
	"KEY_0": KEY_0,
	"KEY_1": KEY_1,
	"KEY_102ND": KEY_102ND,
	"KEY_10CHANNELSDOWN": KEY_10CHANNELSDOWN,
	"KEY_10CHANNELSUP": KEY_10CHANNELSUP,
	"KEY_2": KEY_2,
	"KEY_3": KEY_3,
	"KEY_3D_MODE": KEY_3D_MODE,
	"KEY_4": KEY_4,
	"KEY_5": KEY_5,
	"KEY_6": KEY_6,
	"KEY_7": KEY_7,
	"KEY_8": KEY_8,
	"KEY_9": KEY_9,
	"KEY_A": KEY_A,
	"KEY_AB": KEY_AB,
	"KEY_ACCESSIBILITY": KEY_ACCESSIBILITY,
	"KEY_ADDRESSBOOK": KEY_ADDRESSBOOK,
	"KEY_AGAIN": KEY_AGAIN,
	"KEY_ALL_APPLICATIONS": KEY_ALL_APPLICATIONS,
	"KEY_ALS_TOGGLE": KEY_ALS_TOGGLE,
	"KEY_ALTERASE": KEY_ALTERASE,
	"KEY_ANGLE": KEY_ANGLE,
	"KEY_APOSTROPHE": KEY_APOSTROPHE,
	"KEY_APPSELECT": KEY_APPSELECT,
	"KEY_ARCHIVE": KEY_ARCHIVE,
	"KEY_ASPECT_RATIO": KEY_ASPECT_RATIO,
	"KEY_ASSISTANT": KEY_ASSISTANT,
	"KEY_ATTENDANT_OFF": KEY_ATTENDANT_OFF,
	"KEY_ATTENDANT_ON": KEY_ATTENDANT_ON,
	"KEY_ATTENDANT_TOGGLE": KEY_ATTENDANT_TOGGLE,
	"KEY_AUDIO": KEY_AUDIO,
	"KEY_AUDIO_DESC": KEY_AUDIO_DESC,
	"KEY_AUTOPILOT_ENGAGE_TOGGLE": KEY_AUTOPILOT_ENGAGE_TOGGLE,
	"KEY_AUX": KEY_AUX,
	"KEY_B": KEY_B,
	"KEY_BACK": KEY_BACK,
	"KEY_BACKSLASH": KEY_BACKSLASH,
	"KEY_BACKSPACE": KEY_BACKSPACE,
	"KEY_BASSBOOST": KEY_BASSBOOST,
	"KEY_BATTERY": KEY_BATTERY,
	"KEY_BLUE": KEY_BLUE,
	"KEY_BLUETOOTH": KEY_BLUETOOTH,
	"KEY_BOOKMARKS": KEY_BOOKMARKS,
	"KEY_BREAK": KEY_BREAK,
	"KEY_BRIGHTNESSDOWN": KEY_BRIGHTNESSDOWN,
	"KEY_BRIGHTNESSUP": KEY_BRIGHTNESSUP,
	"KEY_BRIGHTNESS_AUTO": KEY_BRIGHTNESS_AUTO,
	"KEY_BRIGHTNESS_CYCLE": KEY_BRIGHTNESS_CYCLE,
	"KEY_BRIGHTNESS_MAX": KEY_BRIGHTNESS_MAX,
	"KEY_BRIGHTNESS_MENU": KEY_BRIGHTNESS_MENU,
	"KEY_BRIGHTNESS_MIN": KEY_BRIGHTNESS_MIN,
	"KEY_BRIGHTNESS_TOGGLE": KEY_BRIGHTNESS_TOGGLE,
	"KEY_BRIGHTNESS_ZERO": KEY_BRIGHTNESS_ZERO,
	"KEY_BRL_DOT1": KEY_BRL_DOT1,
	"KEY_BRL_DOT10": KEY_BRL_DOT10,
	"KEY_BRL_DOT2": KEY_BRL_DOT2,
	"KEY_BRL_DOT3": KEY_BRL_DOT3,
	"KEY_BRL_DOT4": KEY_BRL_DOT4,
	"KEY_BRL_DOT5": KEY_BRL_DOT5,
	"KEY_BRL_DOT6": KEY_BRL_DOT6,
	"KEY_BRL_DOT7": KEY_BRL_DOT7,
	"KEY_BRL_DOT8": KEY_BRL_DOT8,
	"KEY_BRL_DOT9": KEY_BRL_DOT9,
	"KEY_BUTTONCONFIG": KEY_BUTTONCONFIG,
	"KEY_C": KEY_C,
	"KEY_CALC": KEY_CALC,
	"KEY_CALENDAR": KEY_CALENDAR,
	"KEY_CAMERA": KEY_CAMERA,
	"KEY_CAMERA_ACCESS_DISABLE": KEY_CAMERA_ACCESS_DISABLE,
	"KEY_CAMERA_ACCESS_ENABLE": KEY_CAMERA_ACCESS_ENABLE,
	"KEY_CAMERA_ACCESS_TOGGLE": KEY_CAMERA_ACCESS_TOGGLE,
	"KEY_CAMERA_DOWN": KEY_CAMERA_DOWN,
	"KEY_CAMERA_FOCUS": KEY_CAMERA_FOCUS,
	"KEY_CAMERA_LEFT": KEY_CAMERA_LEFT,
	"KEY_CAMERA_RIGHT": KEY_CAMERA_RIGHT,
	"KEY_CAMERA_UP": KEY_CAMERA_UP,
	"KEY_CAMERA_ZOOMIN": KEY_CAMERA_ZOOMIN,
	"KEY_CAMERA_ZOOMOUT": KEY_CAMERA_ZOOMOUT,
	"KEY_CANCEL": KEY_CANCEL,
	"KEY_CAPSLOCK": KEY_CAPSLOCK,
	"KEY_CD": KEY_CD,
	"KEY_CHANNEL": KEY_CHANNEL,
	"KEY_CHANNELDOWN": KEY_CHANNELDOWN,
	"KEY_CHANNELUP": KEY_CHANNELUP,
	"KEY_CHAT": KEY_CHAT,
	"KEY_CLEAR": KEY_CLEAR,
	"KEY_CLEARVU_SONAR": KEY_CLEARVU_SONAR,
	"KEY_CLOSE": KEY_CLOSE,
	"KEY_CLOSECD": KEY_CLOSECD,
	"KEY_CNT": KEY_CNT,
	"KEY_COFFEE": KEY_COFFEE,
	"KEY_COMMA": KEY_COMMA,
	"KEY_COMPOSE": KEY_COMPOSE,
	"KEY_COMPUTER": KEY_COMPUTER,
	"KEY_CONFIG": KEY_CONFIG,
	"KEY_CONNECT": KEY_CONNECT,
	"KEY_CONTEXT_MENU": KEY_CONTEXT_MENU,
	"KEY_CONTROLPANEL": KEY_CONTROLPANEL,
	"KEY_COPY": KEY_COPY,
	"KEY_CUT": KEY_CUT,
	"KEY_CYCLEWINDOWS": KEY_CYCLEWINDOWS,
	"KEY_D": KEY_D,
	"KEY_DASHBOARD": KEY_DASHBOARD,
	"KEY_DATA": KEY_DATA,
	"KEY_DATABASE": KEY_DATABASE,
	"KEY_DELETE": KEY_DELETE,
	"KEY_DELETEFILE": KEY_DELETEFILE,
	"KEY_DEL_EOL": KEY_DEL_EOL,
	"KEY_DEL_EOS": KEY_DEL_EOS,
	"KEY_DEL_LINE": KEY_DEL_LINE,
	"KEY_DICTATE": KEY_DICTATE,
	"KEY_DIGITS": KEY_DIGITS,
	"KEY_DIRECTION": KEY_DIRECTION,
	"KEY_DIRECTORY": KEY_DIRECTORY,
	"KEY_DISPLAYTOGGLE": KEY_DISPLAYTOGGLE,
	"KEY_DISPLAY_OFF": KEY_DISPLAY_OFF,
	"KEY_DOCUMENTS": KEY_DOCUMENTS,
	"KEY_DOLLAR": KEY_DOLLAR,
	"KEY_DOT": KEY_DOT,
	"KEY_DOWN": KEY_DOWN,
	"KEY_DO_NOT_DISTURB": KEY_DO_NOT_DISTURB,
	"KEY_DUAL_RANGE_RADAR": KEY_DUAL_RANGE_RADAR,
	"KEY_DVD": KEY_DVD,
	"KEY_E": KEY_E,
	"KEY_EDIT": KEY_EDIT,
	"KEY_EDITOR": KEY_EDITOR,
	"KEY_EJECTCD": KEY_EJECTCD,
	"KEY_EJECTCLOSECD": KEY_EJECTCLOSECD,
	"KEY_EMAIL": KEY_EMAIL,
	"KEY_EMOJI_PICKER": KEY_EMOJI_PICKER,
	"KEY_END": KEY_END,
	"KEY_ENTER": KEY_ENTER,
	"KEY_EPG": KEY_EPG,
	"KEY_EQUAL": KEY_EQUAL,
	"KEY_ESC": KEY_ESC,
	"KEY_EURO": KEY_EURO,
	"KEY_EXIT": KEY_EXIT,
	"KEY_F": KEY_F,
	"KEY_F1": KEY_F1,
	"KEY_F10": KEY_F10,
	"KEY_F11": KEY_F11,
	"KEY_F12": KEY_F12,
	"KEY_F13": KEY_F13,
	"KEY_F14": KEY_F14,
	"KEY_F15": KEY_F15,
	"KEY_F16": KEY_F16,
	"KEY_F17": KEY_F17,
	"KEY_F18": KEY_F18,
	"KEY_F19": KEY_F19,
	"KEY_F2": KEY_F2,
	"KEY_F20": KEY_F20,
	"KEY_F21": KEY_F21,
	"KEY_F22": KEY_F22,
	"KEY_F23": KEY_F23,
	"KEY_F24": KEY_F24,
	"KEY_F3": KEY_F3,
	"KEY_F4": KEY_F4,
	"KEY_F5": KEY_F5,
	"KEY_F6": KEY_F6,
	"KEY_F7": KEY_F7,
	"KEY_F8": KEY_F8,
	"KEY_F9": KEY_F9,
	"KEY_FASTFORWARD": KEY_FASTFORWARD,
	"KEY_FASTREVERSE": KEY_FASTREVERSE,
	"KEY_FAVORITES": KEY_FAVORITES,
	"KEY_FILE": KEY_FILE,
	"KEY_FINANCE": KEY_FINANCE,
	"KEY_FIND": KEY_FIND,
	"KEY_FIRST": KEY_FIRST,
	"KEY_FISHING_CHART": KEY_FISHING_CHART,
	"KEY_FN": KEY_FN,
	"KEY_FN_1": KEY_FN_1,
	"KEY_FN_2": KEY_FN_2,
	"KEY_FN_B": KEY_FN_B,
	"KEY_FN_D": KEY_FN_D,
	"KEY_FN_E": KEY_FN_E,
	"KEY_FN_ESC": KEY_FN_ESC,
	"KEY_FN_F": KEY_FN_F,
	"KEY_FN_F1": KEY_FN_F1,
	"KEY_FN_F10": KEY_FN_F10,
	"KEY_FN_F11": KEY_FN_F11,
	"KEY_FN_F12": KEY_FN_F12,
	"KEY_FN_F2": KEY_FN_F2,
	"KEY_FN_F3": KEY_FN_F3,
	"KEY_FN_F4": KEY_FN_F4,
	"KEY_FN_F5": KEY_FN_F5,
	"KEY_FN_F6": KEY_FN_F6,
	"KEY_FN_F7": KEY_FN_F7,
	"KEY_FN_F8": KEY_FN_F8,
	"KEY_FN_F9": KEY_FN_F9,
	"KEY_FN_RIGHT_SHIFT": KEY_FN_RIGHT_SHIFT,
	"KEY_FN_S": KEY_FN_S,
	"KEY_FORWARD": KEY_FORWARD,
	"KEY_FORWARDMAIL": KEY_FORWARDMAIL,
	"KEY_FRAMEBACK": KEY_FRAMEBACK,
	"KEY_FRAMEFORWARD": KEY_FRAMEFORWARD,
	"KEY_FRONT": KEY_FRONT,
	"KEY_FULL_SCREEN": KEY_FULL_SCREEN,
	"KEY_G": KEY_G,
	"KEY_GAMES": KEY_GAMES,
	"KEY_GOTO": KEY_GOTO,
	"KEY_GRAPHICSEDITOR": KEY_GRAPHICSEDITOR,
	"KEY_GRAVE": KEY_GRAVE,
	"KEY_GREEN": KEY_GREEN,
	"KEY_H": KEY_H,
	"KEY_HANGEUL": KEY_HANGEUL,
	"KEY_HANGUEL": KEY_HANGUEL,
	"KEY_HANGUP_PHONE": KEY_HANGUP_PHONE,
	"KEY_HANJA": KEY_HANJA,
	"KEY_HELP": KEY_HELP,
	"KEY_HENKAN": KEY_HENKAN,
	"KEY_HIRAGANA": KEY_HIRAGANA,
	"KEY_HOME": KEY_HOME,
	"KEY_HOMEPAGE": KEY_HOMEPAGE,
	"KEY_HP": KEY_HP,
	"KEY_I": KEY_I,
	"KEY_IMAGES": KEY_IMAGES,
	"KEY_INFO": KEY_INFO,
	"KEY_INSERT": KEY_INSERT,
	"KEY_INS_LINE": KEY_INS_LINE,
	"KEY_ISO": KEY_ISO,
	"KEY_J": KEY_J,
	"KEY_JOURNAL": KEY_JOURNAL,
	"KEY_K": KEY_K,
	"KEY_KATAKANA": KEY_KATAKANA,
	"KEY_KATAKANAHIRAGANA": KEY_KATAKANAHIRAGANA,
	"KEY_KBDILLUMDOWN": KEY_KBDILLUMDOWN,
	"KEY_KBDILLUMTOGGLE": KEY_KBDILLUMTOGGLE,
	"KEY_KBDILLUMUP": KEY_KBDILLUMUP,
	"KEY_KBDINPUTASSIST_ACCEPT": KEY_KBDINPUTASSIST_ACCEPT,
	"KEY_KBDINPUTASSIST_CANCEL": KEY_KBDINPUTASSIST_CANCEL,
	"KEY_KBDINPUTASSIST_NEXT": KEY_KBDINPUTASSIST_NEXT,
	"KEY_KBDINPUTASSIST_NEXTGROUP": KEY_KBDINPUTASSIST_NEXTGROUP,
	"KEY_KBDINPUTASSIST_PREV": KEY_KBDINPUTASSIST_PREV,
	"KEY_KBDINPUTASSIST_PREVGROUP": KEY_KBDINPUTASSIST_PREVGROUP,
	"KEY_KBD_LAYOUT_NEXT": KEY_KBD_LAYOUT_NEXT,
	"KEY_KBD_LCD_MENU1": KEY_KBD_LCD_MENU1,
	"KEY_KBD_LCD_MENU2": KEY_KBD_LCD_MENU2,
	"KEY_KBD_LCD_MENU3": KEY_KBD_LCD_MENU3,
	"KEY_KBD_LCD_MENU4": KEY_KBD_LCD_MENU4,
	"KEY_KBD_LCD_MENU5": KEY_KBD_LCD_MENU5,
	"KEY_KEYBOARD": KEY_KEYBOARD,
	"KEY_KP0": KEY_KP0,
	"KEY_KP1": KEY_KP1,
	"KEY_KP2": KEY_KP2,
	"KEY_KP3": KEY_KP3,
	"KEY_KP4": KEY_KP4,
	"KEY_KP5": KEY_KP5,
	"KEY_KP6": KEY_KP6,
	"KEY_KP7": KEY_KP7,
	"KEY_KP8": KEY_KP8,
	"KEY_KP9": KEY_KP9,
	"KEY_KPASTERISK": KEY_KPASTERISK,
	"KEY_KPCOMMA": KEY_KPCOMMA,
	"KEY_KPDOT": KEY_KPDOT,
	"KEY_KPENTER": KEY_KPENTER,
	"KEY_KPEQUAL": KEY_KPEQUAL,
	"KEY_KPJPCOMMA": KEY_KPJPCOMMA,
	"KEY_KPLEFTPAREN": KEY_KPLEFTPAREN,
	"KEY_KPMINUS": KEY_KPMINUS,
	"KEY_KPPLUS": KEY_KPPLUS,
	"KEY_KPPLUSMINUS": KEY_KPPLUSMINUS,
	"KEY_KPRIGHTPAREN": KEY_KPRIGHTPAREN,
	"KEY_KPSLASH": KEY_KPSLASH,
	"KEY_L": KEY_L,
	"KEY_LANGUAGE": KEY_LANGUAGE,
	"KEY_LAST": KEY_LAST,
	"KEY_LEFT": KEY_LEFT,
	"KEY_LEFTALT": KEY_LEFTALT,
	"KEY_LEFTBRACE": KEY_LEFTBRACE,
	"KEY_LEFTCTRL": KEY_LEFTCTRL,
	"KEY_LEFTMETA": KEY_LEFTMETA,
	"KEY_LEFTSHIFT": KEY_LEFTSHIFT,
	"KEY_LEFT_DOWN": KEY_LEFT_DOWN,
	"KEY_LEFT_UP": KEY_LEFT_UP,
	"KEY_LIGHTS_TOGGLE": KEY_LIGHTS_TOGGLE,
	"KEY_LINEFEED": KEY_LINEFEED,
	"KEY_LINK_PHONE": KEY_LINK_PHONE,
	"KEY_LIST": KEY_LIST,
	"KEY_LOGOFF": KEY_LOGOFF,
	"KEY_M": KEY_M,
	"KEY_MACRO": KEY_MACRO,
	"KEY_MACRO1": KEY_MACRO1,
	"KEY_MACRO10": KEY_MACRO10,
	"KEY_MACRO11": KEY_MACRO11,
	"KEY_MACRO12": KEY_MACRO12,
	"KEY_MACRO13": KEY_MACRO13,
	"KEY_MACRO14": KEY_MACRO14,
	"KEY_MACRO15": KEY_MACRO15,
	"KEY_MACRO16": KEY_MACRO16,
	"KEY_MACRO17": KEY_MACRO17,
	"KEY_MACRO18": KEY_MACRO18,
	"KEY_MACRO19": KEY_MACRO19,
	"KEY_MACRO2": KEY_MACRO2,
	"KEY_MACRO20": KEY_MACRO20,
	"KEY_MACRO21": KEY_MACRO21,
	"KEY_MACRO22": KEY_MACRO22,
	"KEY_MACRO23": KEY_MACRO23,
	"KEY_MACRO24": KEY_MACRO24,
	"KEY_MACRO25": KEY_MACRO25,
	"KEY_MACRO26": KEY_MACRO26,
	"KEY_MACRO27": KEY_MACRO27,
	"KEY_MACRO28": KEY_MACRO28,
	"KEY_MACRO29": KEY_MACRO29,
	"KEY_MACRO3": KEY_MACRO3,
	"KEY_MACRO30": KEY_MACRO30,
	"KEY_MACRO4": KEY_MACRO4,
	"KEY_MACRO5": KEY_MACRO5,
	"KEY_MACRO6": KEY_MACRO6,
	"KEY_MACRO7": KEY_MACRO7,
	"KEY_MACRO8": KEY_MACRO8,
	"KEY_MACRO9": KEY_MACRO9,
	"KEY_MACRO_PRESET1": KEY_MACRO_PRESET1,
	"KEY_MACRO_PRESET2": KEY_MACRO_PRESET2,
	"KEY_MACRO_PRESET3": KEY_MACRO_PRESET3,
	"KEY_MACRO_PRESET_CYCLE": KEY_MACRO_PRESET_CYCLE,
	"KEY_MACRO_RECORD_START": KEY_MACRO_RECORD_START,
	"KEY_MACRO_RECORD_STOP": KEY_MACRO_RECORD_STOP,
	"KEY_MAIL": KEY_MAIL,
	"KEY_MARK_WAYPOINT": KEY_MARK_WAYPOINT,
	"KEY_MAX": KEY_MAX,
	"KEY_MEDIA": KEY_MEDIA,
	"KEY_MEDIA_REPEAT": KEY_MEDIA_REPEAT,
	"KEY_MEDIA_TOP_MENU": KEY_MEDIA_TOP_MENU,
	"KEY_MEMO": KEY_MEMO,
	"KEY_MENU": KEY_MENU,
	"KEY_MESSENGER": KEY_MESSENGER,
	"KEY_MHP": KEY_MHP,
	"KEY_MICMUTE": KEY_MICMUTE,
	"KEY_MINUS": KEY_MINUS,
	"KEY_MIN_INTERESTING": KEY_MIN_INTERESTING,
	"KEY_MODE": KEY_MODE,
	"KEY_MOVE": KEY_MOVE,
	"KEY_MP3": KEY_MP3,
	"KEY_MSDOS": KEY_MSDOS,
	"KEY_MUHENKAN": KEY_MUHENKAN,
	"KEY_MUTE": KEY_MUTE,
	"KEY_N": KEY_N,
	"KEY_NAV_CHART": KEY_NAV_CHART,
	"KEY_NAV_INFO": KEY_NAV_INFO,
	"KEY_NEW": KEY_NEW,
	"KEY_NEWS": KEY_NEWS,
	"KEY_NEXT": KEY_NEXT,
	"KEY_NEXTSONG": KEY_NEXTSONG,
	"KEY_NEXT_ELEMENT": KEY_NEXT_ELEMENT,
	"KEY_NEXT_FAVORITE": KEY_NEXT_FAVORITE,
	"KEY_NOTIFICATION_CENTER": KEY_NOTIFICATION_CENTER,
	"KEY_NUMERIC_0": KEY_NUMERIC_0,
	"KEY_NUMERIC_1": KEY_NUMERIC_1,
	"KEY_NUMERIC_11": KEY_NUMERIC_11,
	"KEY_NUMERIC_12": KEY_NUMERIC_12,
	"KEY_NUMERIC_2": KEY_NUMERIC_2,
	"KEY_NUMERIC_3": KEY_NUMERIC_3,
	"KEY_NUMERIC_4": KEY_NUMERIC_4,
	"KEY_NUMERIC_5": KEY_NUMERIC_5,
	"KEY_NUMERIC_6": KEY_NUMERIC_6,
	"KEY_NUMERIC_7": KEY_NUMERIC_7,
	"KEY_NUMERIC_8": KEY_NUMERIC_8,
	"KEY_NUMERIC_9": KEY_NUMERIC_9,
	"KEY_NUMERIC_A": KEY_NUMERIC_A,
	"KEY_NUMERIC_B": KEY_NUMERIC_B,
	"KEY_NUMERIC_C": KEY_NUMERIC_C,
	"KEY_NUMERIC_D": KEY_NUMERIC_D,
	"KEY_NUMERIC_POUND": KEY_NUMERIC_POUND,
	"KEY_NUMERIC_STAR": KEY_NUMERIC_STAR,
	"KEY_NUMLOCK": KEY_NUMLOCK,
	"KEY_O": KEY_O,
	"KEY_OK": KEY_OK,
	"KEY_ONSCREEN_KEYBOARD": KEY_ONSCREEN_KEYBOARD,
	"KEY_OPEN": KEY_OPEN,
	"KEY_OPTION": KEY_OPTION,
	"KEY_P": KEY_P,
	"KEY_PAGEDOWN": KEY_PAGEDOWN,
	"KEY_PAGEUP": KEY_PAGEUP,
	"KEY_PASTE": KEY_PASTE,
	"KEY_PAUSE": KEY_PAUSE,
	"KEY_PAUSECD": KEY_PAUSECD,
	"KEY_PAUSE_RECORD": KEY_PAUSE_RECORD,
	"KEY_PC": KEY_PC,
	"KEY_PHONE": KEY_PHONE,
	"KEY_PICKUP_PHONE": KEY_PICKUP_PHONE,
	"KEY_PLAY": KEY_PLAY,
	"KEY_PLAYCD": KEY_PLAYCD,
	"KEY_PLAYER": KEY_PLAYER,
	"KEY_PLAYPAUSE": KEY_PLAYPAUSE,
	"KEY_POWER": KEY_POWER,
	"KEY_POWER2": KEY_POWER2,
	"KEY_PRESENTATION": KEY_PRESENTATION,
	"KEY_PREVIOUS": KEY_PREVIOUS,
	"KEY_PREVIOUSSONG": KEY_PREVIOUSSONG,
	"KEY_PREVIOUS_ELEMENT": KEY_PREVIOUS_ELEMENT,
	"KEY_PRINT": KEY_PRINT,
	"KEY_PRIVACY_SCREEN_TOGGLE": KEY_PRIVACY_SCREEN_TOGGLE,
	"KEY_PROG1": KEY_PROG1,
	"KEY_PROG2": KEY_PROG2,
	"KEY_PROG3": KEY_PROG3,
	"KEY_PROG4": KEY_PROG4,
	"KEY_PROGRAM": KEY_PROGRAM,
	"KEY_PROPS": KEY_PROPS,
	"KEY_PVR": KEY_PVR,
	"KEY_Q": KEY_Q,
	"KEY_QUESTION": KEY_QUESTION,
	"KEY_R": KEY_R,
	"KEY_RADAR_OVERLAY": KEY_RADAR_OVERLAY,
	"KEY_RADIO": KEY_RADIO,
	"KEY_RECORD": KEY_RECORD,
	"KEY_RED": KEY_RED,
	"KEY_REDO": KEY_REDO,
	"KEY_REFRESH": KEY_REFRESH,
	"KEY_REFRESH_RATE_TOGGLE": KEY_REFRESH_RATE_TOGGLE,
	"KEY_REPLY": KEY_REPLY,
	"KEY_RESERVED": KEY_RESERVED,
	"KEY_RESTART": KEY_RESTART,
	"KEY_REWIND": KEY_REWIND,
	"KEY_RFKILL": KEY_RFKILL,
	"KEY_RIGHT": KEY_RIGHT,
	"KEY_RIGHTALT": KEY_RIGHTALT,
	"KEY_RIGHTBRACE": KEY_RIGHTBRACE,
	"KEY_RIGHTCTRL": KEY_RIGHTCTRL,
	"KEY_RIGHTMETA": KEY_RIGHTMETA,
	"KEY_RIGHTSHIFT": KEY_RIGHTSHIFT,
	"KEY_RIGHT_DOWN": KEY_RIGHT_DOWN,
	"KEY_RIGHT_UP": KEY_RIGHT_UP,
	"KEY_RO": KEY_RO,
	"KEY_ROOT_MENU": KEY_ROOT_MENU,
	"KEY_ROTATE_DISPLAY": KEY_ROTATE_DISPLAY,
	"KEY_ROTATE_LOCK_TOGGLE": KEY_ROTATE_LOCK_TOGGLE,
	"KEY_S": KEY_S,
	"KEY_SAT": KEY_SAT,
	"KEY_SAT2": KEY_SAT2,
	"KEY_SAVE": KEY_SAVE,
	"KEY_SCALE": KEY_SCALE,
	"KEY_SCREEN": KEY_SCREEN,
	"KEY_SCREENLOCK": KEY_SCREENLOCK,
	"KEY_SCREENSAVER": KEY_SCREENSAVER,
	"KEY_SCROLLDOWN": KEY_SCROLLDOWN,
	"KEY_SCROLLLOCK": KEY_SCROLLLOCK,
	"KEY_SCROLLUP": KEY_SCROLLUP,
	"KEY_SEARCH": KEY_SEARCH,
	"KEY_SELECT": KEY_SELECT,
	"KEY_SELECTIVE_SCREENSHOT": KEY_SELECTIVE_SCREENSHOT,
	"KEY_SEMICOLON": KEY_SEMICOLON,
	"KEY_SEND": KEY_SEND,
	"KEY_SENDFILE": KEY_SENDFILE,
	"KEY_SETUP": KEY_SETUP,
	"KEY_SHOP": KEY_SHOP,
	"KEY_SHUFFLE": KEY_SHUFFLE,
	"KEY_SIDEVU_SONAR": KEY_SIDEVU_SONAR,
	"KEY_SINGLE_RANGE_RADAR": KEY_SINGLE_RANGE_RADAR,
	"KEY_SLASH": KEY_SLASH,
	"KEY_SLEEP": KEY_SLEEP,
	"KEY_SLOW": KEY_SLOW,
	"KEY_SLOWREVERSE": KEY_SLOWREVERSE,
	"KEY_SOS": KEY_SOS,
	"KEY_SOUND": KEY_SOUND,
	"KEY_SPACE": KEY_SPACE,
	"KEY_SPELLCHECK": KEY_SPELLCHECK,
	"KEY_SPORT": KEY_SPORT,
	"KEY_SPREADSHEET": KEY_SPREADSHEET,
	"KEY_STOP": KEY_STOP,
	"KEY_STOPCD": KEY_STOPCD,
	"KEY_STOP_RECORD": KEY_STOP_RECORD,
	"KEY_SUBTITLE": KEY_SUBTITLE,
	"KEY_SUSPEND": KEY_SUSPEND,
	"KEY_SWITCHVIDEOMODE": KEY_SWITCHVIDEOMODE,
	"KEY_SYSRQ": KEY_SYSRQ,
	"KEY_T": KEY_T,
	"KEY_TAB": KEY_TAB,
	"KEY_TAPE": KEY_TAPE,
	"KEY_TASKMANAGER": KEY_TASKMANAGER,
	"KEY_TEEN": KEY_TEEN,
	"KEY_TEXT": KEY_TEXT,
	"KEY_TIME": KEY_TIME,
	"KEY_TITLE": KEY_TITLE,
	"KEY_TOUCHPAD_OFF": KEY_TOUCHPAD_OFF,
	"KEY_TOUCHPAD_ON": KEY_TOUCHPAD_ON,
	"KEY_TOUCHPAD_TOGGLE": KEY_TOUCHPAD_TOGGLE,
	"KEY_TRADITIONAL_SONAR": KEY_TRADITIONAL_SONAR,
	"KEY_TUNER": KEY_TUNER,
	"KEY_TV": KEY_TV,
	"KEY_TV2": KEY_TV2,
	"KEY_TWEN": KEY_TWEN,
	"KEY_U": KEY_U,
	"KEY_UNDO": KEY_UNDO,
	"KEY_UNKNOWN": KEY_UNKNOWN,
	"KEY_UNMUTE": KEY_UNMUTE,
	"KEY_UP": KEY_UP,
	"KEY_UWB": KEY_UWB,
	"KEY_V": KEY_V,
	"KEY_VCR": KEY_VCR,
	"KEY_VCR2": KEY_VCR2,
	"KEY_VENDOR": KEY_VENDOR,
	"KEY_VIDEO": KEY_VIDEO,
	"KEY_VIDEOPHONE": KEY_VIDEOPHONE,
	"KEY_VIDEO_NEXT": KEY_VIDEO_NEXT,
	"KEY_VIDEO_PREV": KEY_VIDEO_PREV,
	"KEY_VOD": KEY_VOD,
	"KEY_VOICECOMMAND": KEY_VOICECOMMAND,
	"KEY_VOICEMAIL": KEY_VOICEMAIL,
	"KEY_VOLUMEDOWN": KEY_VOLUMEDOWN,
	"KEY_VOLUMEUP": KEY_VOLUMEUP,
	"KEY_W": KEY_W,
	"KEY_WAKEUP": KEY_WAKEUP,
	"KEY_WIMAX": KEY_WIMAX,
	"KEY_WLAN": KEY_WLAN,
	"KEY_WORDPROCESSOR": KEY_WORDPROCESSOR,
	"KEY_WPS_BUTTON": KEY_WPS_BUTTON,
	"KEY_WWAN": KEY_WWAN,
	"KEY_WWW": KEY_WWW,
	"KEY_X": KEY_X,
	"KEY_XFER": KEY_XFER,
	"KEY_Y": KEY_Y,
	"KEY_YELLOW": KEY_YELLOW,
	"KEY_YEN": KEY_YEN,
	"KEY_Z": KEY_Z,
	"KEY_ZENKAKUHANKAKU": KEY_ZENKAKUHANKAKU,
	"KEY_ZOOM": KEY_ZOOM,
	"KEY_ZOOMIN": KEY_ZOOMIN,
	"KEY_ZOOMOUT": KEY_ZOOMOUT,
	"KEY_ZOOMRESET": KEY_ZOOMRESET,
}
